// Package storage provides SQLite-based persistence for solve history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve history.
type Store struct {
	db *sql.DB
}

// SolveRecord is one recorded solve run of one board.
type SolveRecord struct {
	ID          int64
	Fingerprint uint64 // Board identity, independent of run
	Name        string
	Width       int
	Height      int
	Stones      int // Non-empty cells at load
	Solvable    bool
	Moves       int // Solution length; 0 when unsolvable
	Nodes       int64
	Duration    time.Duration
	CreatedAt   time.Time
}

// Summary aggregates the whole history table.
type Summary struct {
	Total    int
	Solvable int
	AvgNodes float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			fingerprint TEXT NOT NULL,
			name TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			stones INTEGER NOT NULL,
			solvable INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			nodes INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_fingerprint ON solves(fingerprint);
		CREATE INDEX IF NOT EXISTS idx_solves_created_at ON solves(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSolve records a solve run. Returns the ID of the inserted record.
func (s *Store) SaveSolve(rec SolveRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO solves (fingerprint, name, width, height, stones, solvable, moves, nodes, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fingerprintText(rec.Fingerprint),
		rec.Name,
		rec.Width,
		rec.Height,
		rec.Stones,
		rec.Solvable,
		rec.Moves,
		rec.Nodes,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Recent retrieves the most recent solve records.
func (s *Store) Recent(limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, fingerprint, name, width, height, stones, solvable, moves, nodes, duration_ms, created_at
		 FROM solves
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ByFingerprint retrieves the solve records of one board identity.
func (s *Store) ByFingerprint(fp uint64, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, fingerprint, name, width, height, stones, solvable, moves, nodes, duration_ms, created_at
		 FROM solves
		 WHERE fingerprint = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		fingerprintText(fp), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Summarize aggregates the history table.
func (s *Store) Summarize() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(solvable), 0), COALESCE(AVG(nodes), 0) FROM solves`,
	).Scan(&sum.Total, &sum.Solvable, &sum.AvgNodes)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize solves: %w", err)
	}
	return sum, nil
}

func scanRecords(rows *sql.Rows) ([]SolveRecord, error) {
	var records []SolveRecord
	for rows.Next() {
		var (
			rec        SolveRecord
			fp         string
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(&rec.ID, &fp, &rec.Name, &rec.Width, &rec.Height,
			&rec.Stones, &rec.Solvable, &rec.Moves, &rec.Nodes, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if parsed, err := strconv.ParseUint(fp, 16, 64); err == nil {
			rec.Fingerprint = parsed
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			rec.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				rec.CreatedAt = parsed
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// fingerprintText renders a fingerprint as fixed-width hex, which keeps
// the full uint64 range without sign trouble in SQLite integers.
func fingerprintText(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}
