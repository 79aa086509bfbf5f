// Package history implements the SQLite-backed conversion log for the
// unitconv CLI.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "history.db"

// Record is one logged conversion.
type Record struct {
	ConversionID string    // UUID v7, generated on append.
	RecordedAt   time.Time // UTC timestamp of the conversion.
	Magnitude    float64   // Input magnitude.
	FromUnit     string    // Source unit token.
	ToUnit       string    // Target unit token.
	Result       float64   // Converted magnitude.
}

// Store is a handle on the conversion log database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the conversion log in dataDir.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(createConversions); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Append logs one conversion and returns the stored record.
func (s *Store) Append(magnitude float64, fromUnit, toUnit string, result float64) (Record, error) {
	newID, err := uuid.NewV7()
	if err != nil {
		return Record{}, fmt.Errorf("generating UUID v7: %w", err)
	}
	rec := Record{
		ConversionID: newID.String(),
		RecordedAt:   time.Now().UTC(),
		Magnitude:    magnitude,
		FromUnit:     fromUnit,
		ToUnit:       toUnit,
		Result:       result,
	}
	_, err = s.db.Exec(
		"INSERT INTO conversions (conversion_id, recorded_at, magnitude, from_unit, to_unit, result) VALUES (?, ?, ?, ?, ?, ?)",
		rec.ConversionID, rec.RecordedAt.Format(time.RFC3339Nano),
		rec.Magnitude, rec.FromUnit, rec.ToUnit, rec.Result,
	)
	if err != nil {
		return Record{}, fmt.Errorf("inserting conversion: %w", err)
	}
	return rec, nil
}

// List returns logged conversions newest first. A limit of 0 returns
// everything.
func (s *Store) List(limit int) ([]Record, error) {
	query := "SELECT conversion_id, recorded_at, magnitude, from_unit, to_unit, result FROM conversions ORDER BY recorded_at DESC, conversion_id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var recordedAt string
		if err := rows.Scan(&rec.ConversionID, &recordedAt, &rec.Magnitude, &rec.FromUnit, &rec.ToUnit, &rec.Result); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		rec.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing recorded_at %q: %w", recordedAt, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear removes every logged conversion.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM conversions"); err != nil {
		return fmt.Errorf("clearing conversions: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
