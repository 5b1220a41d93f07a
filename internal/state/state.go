// Package state provides SQLite persistence for the small pieces of user
// state that survive restarts: the starred-complaint set and the
// tutorial-completed flag.
//
// The store is an explicit object injected into the UI - load at init,
// save on change. Nothing else in the app touches the database.
package state

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

const tutorialFlag = "tutorial-completed"

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates a Store at the given database path, creating tables as
// needed. ":memory:" is supported for tests.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS starred (
		complaint_id INTEGER PRIMARY KEY,
		starred_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS flags (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Starred loads the full starred-id set.
func (s *Store) Starred() (map[int]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT complaint_id FROM starred`)
	if err != nil {
		return nil, fmt.Errorf("query starred: %w", err)
	}
	defer rows.Close()

	starred := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan starred: %w", err)
		}
		starred[id] = true
	}
	return starred, rows.Err()
}

// SetStarred stars or unstars a complaint id.
func (s *Store) SetStarred(id int, starred bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if starred {
		_, err = s.db.Exec(
			`INSERT INTO starred (complaint_id) VALUES (?) ON CONFLICT(complaint_id) DO NOTHING`, id)
	} else {
		_, err = s.db.Exec(`DELETE FROM starred WHERE complaint_id = ?`, id)
	}
	if err != nil {
		return fmt.Errorf("set starred: %w", err)
	}
	return nil
}

// TutorialCompleted reports whether the onboarding tour has been completed
// (or skipped) before. Absent flag means false.
func (s *Store) TutorialCompleted() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow(`SELECT value FROM flags WHERE name = ?`, tutorialFlag).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query flag: %w", err)
	}
	return value == "true", nil
}

// SetTutorialCompleted persists the tutorial flag.
func (s *Store) SetTutorialCompleted(done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := "false"
	if done {
		value = "true"
	}
	_, err := s.db.Exec(
		`INSERT INTO flags (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`, tutorialFlag, value)
	if err != nil {
		return fmt.Errorf("set flag: %w", err)
	}
	return nil
}
