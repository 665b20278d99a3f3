package duckdb

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/inodb/vibe-orf/internal/index"
	"github.com/inodb/vibe-orf/internal/protein"
)

// ProteinRecord is one stored protein with its derived properties.
type ProteinRecord struct {
	RunID            string
	Sequence         string
	Length           int64
	Mass             float64
	NetCharge        float64 // at pH 7
	IsoelectricPoint float64
	Extinction       int64
	Hydrophobicity   float64
}

func recordOf(runID string, p *protein.Protein) ProteinRecord {
	return ProteinRecord{
		RunID:            runID,
		Sequence:         p.String(),
		Length:           int64(p.Len()),
		Mass:             p.Mass(),
		NetCharge:        p.NetCharge(7),
		IsoelectricPoint: p.IsoelectricPoint(),
		Extinction:       int64(p.Extinction()),
		Hydrophobicity:   p.Hydrophobicity(),
	}
}

const proteinColumns = `run_id, sequence, length, mass, net_charge,
	isoelectric_point, extinction, hydrophobicity`

// LookupProtein returns the stored protein with the given one-letter sequence.
func (s *Store) LookupProtein(runID, sequence string) (*ProteinRecord, error) {
	row := s.db.QueryRow(`SELECT `+proteinColumns+`
		FROM proteins
		WHERE run_id=? AND sequence=?`, runID, sequence)

	var r ProteinRecord
	err := row.Scan(&r.RunID, &r.Sequence, &r.Length, &r.Mass, &r.NetCharge,
		&r.IsoelectricPoint, &r.Extinction, &r.Hydrophobicity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("protein %s in run %s: %w", sequence, runID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query protein: %w", err)
	}
	return &r, nil
}

// SearchByLength returns the proteins of a run whose length lies in
// [minLen, maxLen], in key order (length, then sequence).
func (s *Store) SearchByLength(runID string, minLen, maxLen int) ([]ProteinRecord, error) {
	rows, err := s.db.Query(`SELECT `+proteinColumns+`
		FROM proteins
		WHERE run_id=? AND length BETWEEN ? AND ?
		ORDER BY length, sequence`, runID, int64(minLen), int64(maxLen))
	if err != nil {
		return nil, fmt.Errorf("query by length: %w", err)
	}
	defer rows.Close()

	return scanProteinRecords(rows)
}

// ProteinCount returns the number of proteins stored for a run.
func (s *Store) ProteinCount(runID string) (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT count(*) FROM proteins WHERE run_id=?", runID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count proteins: %w", err)
	}
	return n, nil
}

// LoadIndex rebuilds the protein index of a stored run.
func (s *Store) LoadIndex(runID string) (*index.Index, error) {
	if _, err := s.GetRun(runID); err != nil {
		return nil, err
	}
	records, err := s.SearchByLength(runID, 0, math.MaxInt32)
	if err != nil {
		return nil, err
	}

	proteins := make([]*protein.Protein, 0, len(records))
	for _, r := range records {
		p, err := protein.Parse(r.Sequence)
		if err != nil {
			return nil, fmt.Errorf("stored protein %q: %w", r.Sequence, err)
		}
		proteins = append(proteins, p)
	}
	return index.New(proteins), nil
}

// scanProteinRecords scans rows into ProteinRecord slices.
func scanProteinRecords(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]ProteinRecord, error) {
	var records []ProteinRecord
	for rows.Next() {
		var r ProteinRecord
		if err := rows.Scan(&r.RunID, &r.Sequence, &r.Length, &r.Mass, &r.NetCharge,
			&r.IsoelectricPoint, &r.Extinction, &r.Hydrophobicity); err != nil {
			return nil, fmt.Errorf("scan protein: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proteins: %w", err)
	}
	return records, nil
}
