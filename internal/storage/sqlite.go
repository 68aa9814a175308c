// Package storage provides SQLite-based persistence for the effect run
// journal and the demo's counter.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run outcomes as stored in the journal.
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
)

// DefaultPath is where fxdemo keeps its database.
const DefaultPath = "~/.tui-fx/fxdemo.db"

const counterKey = "counter"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished or cancelled top-level effect.
type RunEntry struct {
	ID        int64
	PresetID  string
	Frames    int
	Elapsed   time.Duration
	Outcome   string // OutcomeCompleted or OutcomeCancelled
	CreatedAt time.Time
}

// PresetStats contains aggregated statistics for a preset.
type PresetStats struct {
	PresetID   string
	Runs       int
	Completed  int
	Cancelled  int
	AvgElapsed time.Duration
	LastRun    time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS effect_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset_id TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_effect_runs_preset ON effect_runs(preset_id);

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	if e.Outcome != OutcomeCompleted && e.Outcome != OutcomeCancelled {
		return 0, fmt.Errorf("storage: unknown run outcome %q", e.Outcome)
	}

	result, err := s.db.Exec(
		"INSERT INTO effect_runs (preset_id, frames, elapsed_ms, outcome) VALUES (?, ?, ?, ?)",
		e.PresetID, e.Frames, e.Elapsed.Milliseconds(), e.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs of every preset, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, preset_id, frames, elapsed_ms, outcome, created_at
		 FROM effect_runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// RunsForPreset retrieves the most recent runs of one preset, newest first.
func (s *Store) RunsForPreset(presetID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, preset_id, frames, elapsed_ms, outcome, created_at
		 FROM effect_runs
		 WHERE preset_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		presetID, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var elapsedMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PresetID, &e.Frames, &elapsedMs, &e.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// PresetStats retrieves statistics for every preset that has run, sorted
// by preset ID.
func (s *Store) PresetStats() ([]PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset_id,
		        COUNT(*),
		        SUM(CASE WHEN outcome = 'completed' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN outcome = 'cancelled' THEN 1 ELSE 0 END),
		        AVG(elapsed_ms),
		        MAX(created_at)
		 FROM effect_runs
		 GROUP BY preset_id
		 ORDER BY preset_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}
	defer rows.Close()

	var stats []PresetStats
	for rows.Next() {
		var ps PresetStats
		var avgMs float64
		var lastRun any
		if err := rows.Scan(&ps.PresetID, &ps.Runs, &ps.Completed, &ps.Cancelled, &avgMs, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.AvgElapsed = time.Duration(avgMs * float64(time.Millisecond))
		ps.LastRun = parseTime(lastRun)
		stats = append(stats, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes the run journal.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM effect_runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveCounter persists the demo counter.
func (s *Store) SaveCounter(v uint8) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		counterKey, strconv.Itoa(int(v)),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save counter: %w", err)
	}
	return nil
}

// LoadCounter returns the persisted counter, or 0 if none was saved.
func (s *Store) LoadCounter() (uint8, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", counterKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load counter: %w", err)
	}

	v, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt counter %q: %w", value, err)
	}
	return uint8(v), nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
