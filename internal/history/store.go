// Package history keeps a global journal of watch events in SQLite.
//
// The journal is observational: the per-directory sentinel file remains the
// source of truth for progress. Recording failures are for the caller to log
// and move on, never to abort a session.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// EventType classifies a journal row.
type EventType string

const (
	// EventPlayed records that an episode was handed to the player.
	EventPlayed EventType = "played"
	// EventCompleted records a confirmed completion that advanced the counter.
	EventCompleted EventType = "completed"
	// EventReset records an explicit counter reset.
	EventReset EventType = "reset"
)

// Event is one journal row.
type Event struct {
	ID           int64
	Directory    string
	EpisodeIndex int
	VideoPath    string
	Type         EventType
	CreatedAt    time.Time
}

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    directory TEXT NOT NULL,
    episode_index INTEGER NOT NULL,
    video_path TEXT NOT NULL,
    event_type TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_directory ON events(directory);
`

// Open initializes or connects to the journal database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one event to the journal.
func (s *Store) Record(ctx context.Context, ev Event) error {
	if ev.Directory == "" || ev.VideoPath == "" {
		return errors.New("event requires directory and video path")
	}
	switch ev.Type {
	case EventPlayed, EventCompleted, EventReset:
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}

	createdAt := ev.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (directory, episode_index, video_path, event_type, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		ev.Directory, ev.EpisodeIndex, ev.VideoPath, string(ev.Type), createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, directory, episode_index, video_path, event_type, created_at
		 FROM events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var eventType, createdAt string
		if err := rows.Scan(&ev.ID, &ev.Directory, &ev.EpisodeIndex, &ev.VideoPath, &eventType, &createdAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Type = EventType(eventType)
		if parsed, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			ev.CreatedAt = parsed
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
