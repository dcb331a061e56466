// Package history keeps a log of note activity (opens, saves, renames,
// deletions) in a SQLite database under the config directory.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Event classifies one history entry.
type Event string

const (
	EventOpened  Event = "opened"
	EventSaved   Event = "saved"
	EventRenamed Event = "renamed"
	EventDeleted Event = "deleted"
)

// Entry is one recorded activity row.
type Entry struct {
	Timestamp time.Time
	Event     Event
	Title     string
}

// Manager owns the history database connection.
type Manager struct {
	db *sql.DB
}

// NewManager opens (or creates) the history database at dbPath.
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.initSchema(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS activity (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		event TEXT NOT NULL,
		title TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_activity_timestamp ON activity(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_activity_title ON activity(title);
	`

	if _, err := m.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return nil
}

// Record appends one activity row.
func (m *Manager) Record(event Event, title string) error {
	query := `INSERT INTO activity (timestamp, event, title) VALUES (?, ?, ?)`
	if _, err := m.db.Exec(query, time.Now().UTC().Format(time.RFC3339), string(event), title); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (m *Manager) Recent(limit int) ([]Entry, error) {
	query := `SELECT timestamp, event, title FROM activity ORDER BY id DESC LIMIT ?`
	rows, err := m.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var ts, event, title string
		if err := rows.Scan(&ts, &event, &title); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			parsed = time.Time{}
		}
		entries = append(entries, Entry{Timestamp: parsed, Event: Event(event), Title: title})
	}
	return entries, rows.Err()
}

// Clear removes all history entries.
func (m *Manager) Clear() error {
	if _, err := m.db.Exec(`DELETE FROM activity`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (m *Manager) Close() error {
	return m.db.Close()
}
