// Package roles persists the role-label dictionary in a local sqlite
// database, independent of the remote gateway. The dictionary survives
// across sessions even when the remote store is unreachable.
package roles

import (
	"database/sql"
	"fmt"

	apperrors "roadworks-backend/internal/errors"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS role_labels (
	key   TEXT PRIMARY KEY,
	label TEXT NOT NULL
);`

// Store is a file-backed key-value dictionary of role labels
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the local dictionary at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open role store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create role schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the whole dictionary
func (s *Store) Load() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, label FROM role_labels`)
	if err != nil {
		return nil, apperrors.NewPersistenceError("load role labels", err)
	}
	defer rows.Close()

	labels := make(map[string]string)
	for rows.Next() {
		var key, label string
		if err := rows.Scan(&key, &label); err != nil {
			return nil, apperrors.NewPersistenceError("scan role label", err)
		}
		labels[key] = label
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("load role labels", err)
	}
	return labels, nil
}

// Save inserts or replaces a single role label
func (s *Store) Save(key, label string) error {
	_, err := s.db.Exec(
		`INSERT INTO role_labels (key, label) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET label = excluded.label`,
		key, label,
	)
	if err != nil {
		return apperrors.NewPersistenceError("save role label", err)
	}
	return nil
}

// Delete removes a role label by key. Deleting an absent key is not an
// error at this layer; the store enforces the built-in and in-use guards.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM role_labels WHERE key = ?`, key); err != nil {
		return apperrors.NewPersistenceError("delete role label", err)
	}
	return nil
}
