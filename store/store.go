// Package store records solver runs in a SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoRuns indicates no run has been recorded for the requested day.
var ErrNoRuns = errors.New("no runs recorded")

// Run is one recorded solver execution.
type Run struct {
	Day      int
	Part1    string
	Part2    string
	Duration time.Duration
	RanAt    time.Time
}

// Store persists solver runs.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens the results database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day INTEGER NOT NULL,
		part1 TEXT NOT NULL,
		part2 TEXT NOT NULL,
		duration_us INTEGER NOT NULL,
		ran_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one run.
func (s *Store) Record(run Run) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (day, part1, part2, duration_us, ran_at) VALUES (?, ?, ?, ?, ?)",
		run.Day, run.Part1, run.Part2, run.Duration.Microseconds(), run.RanAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording run for day %d: %w", run.Day, err)
	}
	return nil
}

// Latest returns the most recent run for a day.
func (s *Store) Latest(day int) (Run, error) {
	row := s.db.QueryRow(
		"SELECT day, part1, part2, duration_us, ran_at FROM runs WHERE day = ? ORDER BY id DESC LIMIT 1",
		day,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNoRuns
	}
	if err != nil {
		return Run{}, fmt.Errorf("loading latest run for day %d: %w", day, err)
	}
	return run, nil
}

// History returns all recorded runs for a day, oldest first.
func (s *Store) History(day int) ([]Run, error) {
	rows, err := s.db.Query(
		"SELECT day, part1, part2, duration_us, ran_at FROM runs WHERE day = ? ORDER BY id",
		day,
	)
	if err != nil {
		return nil, fmt.Errorf("loading history for day %d: %w", day, err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("loading history for day %d: %w", day, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var durationUS int64
	var ranAt string
	if err := row.Scan(&run.Day, &run.Part1, &run.Part2, &durationUS, &ranAt); err != nil {
		return Run{}, err
	}
	run.Duration = time.Duration(durationUS) * time.Microsecond
	parsed, err := time.Parse(time.RFC3339Nano, ranAt)
	if err != nil {
		return Run{}, fmt.Errorf("bad ran_at %q: %w", ranAt, err)
	}
	run.RanAt = parsed
	return run, nil
}
