// Package storage provides SQLite-based persistence for puzzle progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// levelsSolvedKey is the progress row holding the difficulty counter.
const levelsSolvedKey = "levels_solved"

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// SolveRecord is one completed puzzle.
type SolveRecord struct {
	ID           int64
	PuzzleID     string // Random UUID, assigned by RecordSolve when empty
	Mode         string // Registry mode ID
	Width        int
	Height       int
	Moves        int
	Duration     time.Duration
	JumbleChance float64
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			jumble_chance REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_size ON solves(width, height, moves);
		CREATE INDEX IF NOT EXISTS idx_solves_mode ON solves(mode);
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

// LevelsSolved returns the persisted progress counter. Zero on a fresh database.
func (s *Store) LevelsSolved() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT value FROM progress WHERE key = ?", levelsSolvedKey).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return n, nil
}

// RecordSolve stores a completed puzzle and increments the progress counter
// in one transaction. Returns the new counter value.
func (s *Store) RecordSolve(rec SolveRecord) (int, error) {
	if rec.PuzzleID == "" {
		rec.PuzzleID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO solves (puzzle_id, mode, width, height, moves, duration_ms, jumble_chance)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.PuzzleID, rec.Mode, rec.Width, rec.Height, rec.Moves,
		rec.Duration.Milliseconds(), rec.JumbleChance,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO progress (key, value) VALUES (?, 1)
		 ON CONFLICT(key) DO UPDATE SET value = value + 1`,
		levelsSolvedKey,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update progress: %w", err)
	}

	var solved int
	if err := tx.QueryRow("SELECT value FROM progress WHERE key = ?", levelsSolvedKey).Scan(&solved); err != nil {
		return 0, fmt.Errorf("storage: cannot query progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit solve: %w", err)
	}
	return solved, nil
}

const solveColumns = `id, puzzle_id, mode, width, height, moves, duration_ms, jumble_chance, created_at`

// RecentSolves returns the latest solves, newest first.
func (s *Store) RecentSolves(limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+solveColumns+`
		 FROM solves
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// BestSolves returns the fewest-move solves for a grid size.
func (s *Store) BestSolves(width, height, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE width = ? AND height = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		width, height, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best solves: %w", err)
	}
	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]SolveRecord, error) {
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		var r SolveRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PuzzleID, &r.Mode, &r.Width, &r.Height, &r.Moves,
			&durationMs, &r.JumbleChance, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// parseTime handles both driver representations of a DATETIME column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Stats contains aggregated solve statistics.
type Stats struct {
	LevelsSolved int
	Solves       int
	TotalMoves   int64
	AvgMoves     float64
	BestMoves    int
	Fastest      time.Duration
	LastSolved   time.Time
}

// Stats aggregates every recorded solve together with the progress counter.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var fastestMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(moves), 0), COALESCE(AVG(moves), 0),
		        COALESCE(MIN(moves), 0), COALESCE(MIN(duration_ms), 0)
		 FROM solves`,
	).Scan(&stats.Solves, &stats.TotalMoves, &stats.AvgMoves, &stats.BestMoves, &fastestMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.Fastest = time.Duration(fastestMs) * time.Millisecond

	var last any
	err = s.db.QueryRow(`SELECT created_at FROM solves ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last solve: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTime(last)
	}

	stats.LevelsSolved, err = s.LevelsSolved()
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ResetProgress clears the progress counter and all solve records.
func (s *Store) ResetProgress() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM solves"); err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM progress"); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}
