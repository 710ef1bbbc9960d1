// Package storage provides an SQLite-backed log of finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory and disappears with the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite database holding the run log.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID        uuid.UUID
	Score     int
	Passed    int
	ElapsedMs float64
	Speed     float64 // Scroll speed magnitude at the end of the run
	Seed      int64
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs        int
	BestScore   int
	AvgScore    float64
	TotalPassed int64
	LongestMs   float64
	LastPlayed  time.Time
}

// Open creates a named in-memory database and runs migrations.
// Stores opened with the same name share data; an empty name picks a
// unique one.
func Open(name string) (*Store, error) {
	if name == "" {
		name = "runs-" + uuid.NewString()
	}
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// An in-memory database lives as long as its connection
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			passed INTEGER NOT NULL DEFAULT 0,
			elapsed_ms REAL NOT NULL DEFAULT 0,
			speed REAL NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the data.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. A missing ID or timestamp is filled in.
// Returns the run as stored.
func (s *Store) SaveRun(run Run) (Run, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, score, passed, elapsed_ms, speed, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.Score, run.Passed, run.ElapsedMs, run.Speed, run.Seed, run.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run, nil
}

// TopRuns retrieves the best N runs.
// Results are ordered by score descending, earlier runs first on ties.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, passed, elapsed_ms, speed, seed, created_at
		 FROM runs
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			id        string
			createdAt int64
		)
		if err := rows.Scan(&id, &r.Score, &r.Passed, &r.ElapsedMs, &r.Speed, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", id, err)
		}
		r.CreatedAt = time.UnixMilli(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (Stats, error) {
	var (
		stats      Stats
		lastPlayed sql.NullInt64
	)

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(passed), 0), COALESCE(MAX(elapsed_ms), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalPassed, &stats.LongestMs, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	if lastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}

	return stats, nil
}
