package usagestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite is a persistent Store backed by a SQLite database file.
type SQLite struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (or creates) a SQLite store at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLite{db: db, path: path}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLite) init() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("pragma failed: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS used_recommendations (
			key TEXT PRIMARY KEY,
			used_at TEXT NOT NULL
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	return nil
}

// Load returns all persisted keys, ordered.
func (s *SQLite) Load(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM used_recommendations ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to load keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Save replaces the persisted key set in a single transaction.
func (s *SQLite) Save(ctx context.Context, keys []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM used_recommendations"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO used_recommendations (key, used_at) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, k, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
