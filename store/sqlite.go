// Package store provides a durable key/value backend for the ledger state,
// backed by an embedded sqlite database.
package store

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_state (
	k TEXT PRIMARY KEY,
	v TEXT NOT NULL
);`

// SQLiteState implements the ledger State interface over a single sqlite
// table. The interface carries no errors, so storage failures are logged
// and latched; callers check Err after a batch of operations the same way
// they would check a bufio writer.
type SQLiteState struct {
	db  *sql.DB
	log zerolog.Logger
	err error
}

// Open creates or opens the database file and ensures the schema.
// Example payload: store.Open("dontrack.db", logger)
func Open(path string, logger zerolog.Logger) (*SQLiteState, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// the ledger applies operations serially, a single connection keeps
	// sqlite's locking out of the way
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLiteState{db: db, log: logger}, nil
}

// Set stores or replaces the value under key.
func (s *SQLiteState) Set(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO ledger_state (k, v) VALUES (?, ?)
		 ON CONFLICT(k) DO UPDATE SET v = excluded.v`, key, value)
	s.latch("set", key, err)
}

// Get returns the value under key, nil when absent.
func (s *SQLiteState) Get(key string) *string {
	var v string
	err := s.db.QueryRow(`SELECT v FROM ledger_state WHERE k = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		s.latch("get", key, err)
		return nil
	}
	return &v
}

// Delete removes the key, absent keys are fine.
func (s *SQLiteState) Delete(key string) {
	_, err := s.db.Exec(`DELETE FROM ledger_state WHERE k = ?`, key)
	s.latch("delete", key, err)
}

// Err returns the first storage failure since the last call and clears it.
func (s *SQLiteState) Err() error {
	err := s.err
	s.err = nil
	return err
}

// Len counts stored keys, mainly for tests and diagnostics.
func (s *SQLiteState) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM ledger_state`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Close releases the database handle.
func (s *SQLiteState) Close() error {
	return s.db.Close()
}

func (s *SQLiteState) latch(op, key string, err error) {
	if err == nil {
		return
	}
	s.log.Error().Err(err).Str("op", op).Str("key", key).Msg("state operation failed")
	if s.err == nil {
		s.err = fmt.Errorf("%s %s: %w", op, key, err)
	}
}
