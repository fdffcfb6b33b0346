// Package store persists simulation runs and their plays in a local SQLite
// database so reports, charts, and exports can be re-rendered without
// regenerating data.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"passrush/internal/sim"
)

// Run is the metadata row for one stored simulation.
type Run struct {
	ID        string
	CreatedAt time.Time
	Seed      int64
	Plays     int
	Params    sim.Params
}

// Store wraps the SQLite database holding runs and plays.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// Open initializes the SQLite database at the given path, creating the
// parent directory and schema if needed.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initialize creates the required tables.
func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		seed INTEGER NOT NULL,
		play_count INTEGER NOT NULL,
		params TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS plays (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		play_id INTEGER NOT NULL,
		time_to_throw REAL NOT NULL,
		pressure_applied INTEGER NOT NULL,
		time_to_pressure REAL NOT NULL,
		down INTEGER NOT NULL,
		distance REAL NOT NULL,
		field_position REAL NOT NULL,
		score_diff REAL NOT NULL,
		quarter INTEGER NOT NULL,
		def_alignment TEXT NOT NULL,
		rushers INTEGER NOT NULL,
		completion INTEGER NOT NULL,
		yards_gained REAL NOT NULL,
		sack INTEGER NOT NULL,
		interception INTEGER NOT NULL,
		PRIMARY KEY (run_id, play_id)
	);
	CREATE INDEX IF NOT EXISTS idx_plays_run ON plays(run_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveRun stores a run and its plays in one transaction and returns the
// generated run ID.
func (s *Store) SaveRun(seed int64, params sim.Params, plays []sim.Play) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal params: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.New().String()
	if _, err := tx.Exec(
		`INSERT INTO runs (id, seed, play_count, params) VALUES (?, ?, ?, ?)`,
		id, seed, len(plays), string(paramsJSON),
	); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO plays (
		run_id, play_id, time_to_throw, pressure_applied, time_to_pressure,
		down, distance, field_position, score_diff, quarter, def_alignment,
		rushers, completion, yards_gained, sack, interception
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare play insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range plays {
		if _, err := stmt.Exec(
			id, p.PlayID, p.TimeToThrow, boolInt(p.Pressure), p.TimeToPressure,
			p.Down, p.Distance, p.FieldPosition, p.ScoreDiff, p.Quarter,
			string(p.Alignment), p.Rushers, boolInt(p.Complete), p.YardsGained,
			boolInt(p.Sack), boolInt(p.Interception),
		); err != nil {
			return "", fmt.Errorf("failed to insert play %d: %w", p.PlayID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// LoadRun fetches run metadata by ID.
func (s *Store) LoadRun(id string) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scanRun(s.db.QueryRow(
		`SELECT id, created_at, seed, play_count, params FROM runs WHERE id = ?`, id))
}

// LatestRun fetches the most recently stored run.
func (s *Store) LatestRun() (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scanRun(s.db.QueryRow(
		`SELECT id, created_at, seed, play_count, params FROM runs
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`))
}

func scanRun(row *sql.Row) (Run, error) {
	var r Run
	var paramsJSON string
	if err := row.Scan(&r.ID, &r.CreatedAt, &r.Seed, &r.Plays, &paramsJSON); err != nil {
		if err == sql.ErrNoRows {
			return Run{}, fmt.Errorf("run not found: %w", err)
		}
		return Run{}, fmt.Errorf("failed to scan run: %w", err)
	}
	if err := json.Unmarshal([]byte(paramsJSON), &r.Params); err != nil {
		return Run{}, fmt.Errorf("failed to unmarshal params: %w", err)
	}
	return r, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, created_at, seed, play_count, params FROM runs
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var paramsJSON string
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Seed, &r.Plays, &paramsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(paramsJSON), &r.Params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal params: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LoadPlays fetches all plays of a run ordered by play ID.
func (s *Store) LoadPlays(runID string) ([]sim.Play, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT
		play_id, time_to_throw, pressure_applied, time_to_pressure, down,
		distance, field_position, score_diff, quarter, def_alignment, rushers,
		completion, yards_gained, sack, interception
		FROM plays WHERE run_id = ? ORDER BY play_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays: %w", err)
	}
	defer rows.Close()

	var plays []sim.Play
	for rows.Next() {
		var p sim.Play
		var pressure, completion, sack, interception int
		var alignment string
		if err := rows.Scan(
			&p.PlayID, &p.TimeToThrow, &pressure, &p.TimeToPressure, &p.Down,
			&p.Distance, &p.FieldPosition, &p.ScoreDiff, &p.Quarter, &alignment,
			&p.Rushers, &completion, &p.YardsGained, &sack, &interception,
		); err != nil {
			return nil, fmt.Errorf("failed to scan play: %w", err)
		}
		p.Pressure = pressure != 0
		p.Complete = completion != 0
		p.Sack = sack != 0
		p.Interception = interception != 0
		p.Alignment = sim.Alignment(alignment)
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
