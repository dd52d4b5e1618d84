// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal keeps a local SQLite log of discovered work items so a
// user can review what the CLI has handed out. Discovery never reads it.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/suggested-edits/pkg/types"
)

const (
	dbFile       = "journal.db"
	defaultLimit = 50

	// timeLayout has fixed width so found_at sorts lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// Entry is one recorded discovery. Title is the page to edit; SourceTitle
// and SourceText are set for translation tasks.
type Entry struct {
	ID          string              `json:"id" yaml:"id"`
	Mode        types.DiscoveryMode `json:"mode" yaml:"mode"`
	Wiki        string              `json:"wiki" yaml:"wiki"`
	Title       string              `json:"title" yaml:"title"`
	SourceTitle string              `json:"source_title,omitempty" yaml:"source_title,omitempty"`
	SourceText  string              `json:"source_text,omitempty" yaml:"source_text,omitempty"`
	FoundAt     time.Time           `json:"found_at" yaml:"found_at"`
}

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal at cfg.Dir/journal.db.
func Open(cfg types.JournalConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS discoveries (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			wiki TEXT NOT NULL,
			title TEXT NOT NULL,
			source_title TEXT,
			source_text TEXT,
			found_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_discoveries_found_at ON discoveries(found_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores e. Missing ID and FoundAt are filled in; the stored entry is
// returned.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.FoundAt.IsZero() {
		e.FoundAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO discoveries (id, mode, wiki, title, source_title, source_text, found_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Mode), e.Wiki, e.Title, e.SourceTitle, e.SourceText,
		e.FoundAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("recording %s: %w", e.Title, err)
	}
	return e, nil
}

// List returns up to limit entries, newest first. A limit of 0 uses 50.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, wiki, title, source_title, source_text, found_at
		 FROM discoveries ORDER BY found_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing discoveries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                       Entry
			mode, foundAt           string
			sourceTitle, sourceText sql.NullString
		)
		if err := rows.Scan(&e.ID, &mode, &e.Wiki, &e.Title, &sourceTitle, &sourceText, &foundAt); err != nil {
			return nil, fmt.Errorf("scanning discovery: %w", err)
		}
		e.Mode = types.DiscoveryMode(mode)
		e.SourceTitle = sourceTitle.String
		e.SourceText = sourceText.String
		if t, parseErr := time.Parse(timeLayout, foundAt); parseErr == nil {
			e.FoundAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ExportYAML writes up to limit entries to w as a YAML list.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, limit int) error {
	entries, err := s.List(ctx, limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []Entry{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
