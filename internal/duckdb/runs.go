package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-orf/internal/index"
)

// Run describes one stored scan.
type Run struct {
	ID            string
	Source        string
	SourceSize    int64
	SourceModTime time.Time
	CreatedAt     time.Time
	ProteinCount  int64
}

// CreateRun stores ix as a new run and returns its generated ID. Proteins
// are batch-inserted with the Appender API.
func (s *Store) CreateRun(source FileFingerprint, ix *index.Index) (string, error) {
	runID := uuid.NewString()

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return "", fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(context.Background(),
		`INSERT INTO runs VALUES (?, ?, ?, ?, ?, ?)`,
		runID, source.Path, source.Size, source.ModTime.UTC(), time.Now().UTC(), int64(ix.Len()),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	if err := appendProteins(conn.Raw, runID, ix); err != nil {
		// Leave no half-written run behind.
		if derr := s.DeleteRun(runID); derr != nil {
			return "", fmt.Errorf("%w (cleanup: %v)", err, derr)
		}
		return "", err
	}
	return runID, nil
}

func appendProteins(raw func(func(any) error) error, runID string, ix *index.Index) error {
	var appender *goduckdb.Appender
	if err := raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "proteins")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for k, p := range ix.All() {
		r := recordOf(runID, p)
		if err := appender.AppendRow(
			r.RunID, r.Sequence, r.Length, r.Mass, r.NetCharge,
			r.IsoelectricPoint, r.Extinction, r.Hydrophobicity,
		); err != nil {
			return fmt.Errorf("append protein %s: %w", k, err)
		}
	}

	return appender.Flush()
}

// ListRuns returns every stored run, oldest first.
func (s *Store) ListRuns() ([]Run, error) {
	rows, err := s.db.Query(`SELECT
		run_id, source, source_size, source_modtime, created_at, protein_count
		FROM runs
		ORDER BY created_at, run_id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.SourceSize, &r.SourceModTime, &r.CreatedAt, &r.ProteinCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun returns the run with the given ID, or ErrNotFound.
func (s *Store) GetRun(runID string) (*Run, error) {
	var r Run
	err := s.db.QueryRow(`SELECT
		run_id, source, source_size, source_modtime, created_at, protein_count
		FROM runs
		WHERE run_id=?`, runID).
		Scan(&r.ID, &r.Source, &r.SourceSize, &r.SourceModTime, &r.CreatedAt, &r.ProteinCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", runID, err)
	}
	return &r, nil
}

// DeleteRun removes a run and its proteins.
func (s *Store) DeleteRun(runID string) error {
	if _, err := s.db.Exec("DELETE FROM proteins WHERE run_id=?", runID); err != nil {
		return fmt.Errorf("delete proteins: %w", err)
	}
	res, err := s.db.Exec("DELETE FROM runs WHERE run_id=?", runID)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	return nil
}
