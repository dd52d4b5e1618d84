package types

import "time"

// HTTPConfig holds shared HTTP settings used by every API client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "suggested-edits/0.1 (ops@example.org)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// RequestsPerSecond caps the request rate of one client (default 5).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// MaxRetries is the number of backoff retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// AccessToken is an optional OAuth bearer token for higher API limits.
	AccessToken string `json:"access_token,omitempty" yaml:"access_token,omitempty"`
}

// DiscoveryMode names one of the four discovery pipelines.
type DiscoveryMode string

const (
	ModeDescription            DiscoveryMode = "description"
	ModeDescriptionTranslation DiscoveryMode = "description-translation"
	ModeCaption                DiscoveryMode = "caption"
	ModeCaptionTranslation     DiscoveryMode = "caption-translation"
)

// DiscoveryConfig holds settings for the discovery engine and its clients.
type DiscoveryConfig struct {
	HTTPConfig `yaml:",inline"`

	// BatchSize is the number of random pages sampled per attempt (default 10).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// MaxAttempts caps the number of attempts per discovery. Zero keeps
	// retrying until a candidate is found or the context is cancelled.
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// Concurrency bounds the number of discoveries running at once when
	// several are requested together (default 4).
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// JournalConfig holds settings for the local discovery journal.
type JournalConfig struct {
	// Dir is the directory holding journal.db.
	Dir string `json:"dir" yaml:"dir"`

	// Enabled records every discovery made from the CLI.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Config groups all configuration sections.
type Config struct {
	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
}
