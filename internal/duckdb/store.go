// Package duckdb persists ORF scan runs and their proteins.
// Each scan is stored as a run row plus one row per distinct protein, so
// results stay queryable after the process exits.
package duckdb

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// ErrNotFound is returned when a run or protein does not exist.
var ErrNotFound = errors.New("not found")

// Store manages a DuckDB connection holding scan results.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file, or "" for an in-memory store.
func (s *Store) Path() string {
	return s.path
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		run_id VARCHAR PRIMARY KEY,
		source VARCHAR,
		source_size BIGINT,
		source_modtime TIMESTAMP,
		created_at TIMESTAMP,
		protein_count BIGINT
	)`); err != nil {
		return err
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS proteins (
		run_id VARCHAR,
		sequence VARCHAR,
		length BIGINT,
		mass DOUBLE,
		net_charge DOUBLE,
		isoelectric_point DOUBLE,
		extinction BIGINT,
		hydrophobicity DOUBLE,
		PRIMARY KEY (run_id, sequence)
	)`)
	return err
}
