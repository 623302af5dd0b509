// Package history persists accepted input lines in a sqlite database,
// one row per line, grouped by shell session.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type Entry struct {
	ID      string
	Session string
	Line    string
	At      time.Time
}

type Store struct {
	db      *sql.DB
	session string
}

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id      TEXT PRIMARY KEY,
	session TEXT NOT NULL,
	line    TEXT NOT NULL,
	at      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS history_at ON history (at);
`

// Open opens (creating if needed) the history database at path and
// starts a new session.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: initializing %s: %w", path, err)
	}
	return &Store{db: db, session: uuid.NewString()}, nil
}

func (s *Store) Session() string {
	return s.session
}

// Append records one accepted input line.
func (s *Store) Append(line string) error {
	_, err := s.db.Exec(
		"INSERT INTO history (id, session, line, at) VALUES (?, ?, ?, ?)",
		uuid.NewString(), s.session, line, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("history: append: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, oldest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, session, line, at FROM history ORDER BY rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at int64
		if err := rows.Scan(&e.ID, &e.Session, &e.Line, &at); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.At = time.Unix(0, at)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: rows: %w", err)
	}
	// Oldest first for display.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
