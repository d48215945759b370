package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	finished_at TEXT,
	total INTEGER NOT NULL DEFAULT 0,
	failed INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL REFERENCES runs(id),
	modality TEXT NOT NULL,
	input TEXT NOT NULL,
	output TEXT NOT NULL,
	ok INTEGER NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
`

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Entry is one recorded per-file result.
type Entry struct {
	RunID     string
	Modality  string
	Input     string
	Output    string
	OK        bool
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// Open initializes or connects to the history database, guarding setup with
// a sibling lock file.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open history db: %w", err)
	}
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout = 5000"} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	return &Store{db: db, lock: lock, path: path}, nil
}

// Close releases the database and the cross-process lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	if s.lock != nil {
		_ = s.lock.Unlock()
	}
	return dbErr
}

// BeginRun records the start of a batch and returns its identifier.
func (s *Store) BeginRun(ctx context.Context) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx, `INSERT INTO runs (id, started_at) VALUES (?, ?)`, id, now); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// FinishRun stamps the run's completion and aggregate counts.
func (s *Store) FinishRun(ctx context.Context, runID string, total, failed int) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, total = ?, failed = ? WHERE id = ?`,
		now, total, failed, runID); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// Record persists one per-file result.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	ok := 0
	if entry.OK {
		ok = 1
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO results (run_id, modality, input, output, ok, error, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID, entry.Modality, entry.Input, entry.Output, ok, entry.Error,
		entry.Duration.Milliseconds(), now); err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// Recent returns the newest results, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, modality, input, output, ok, error, duration_ms, created_at
		 FROM results ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var ok, durationMS int64
		var createdAt string
		if err := rows.Scan(&entry.RunID, &entry.Modality, &entry.Input, &entry.Output,
			&ok, &entry.Error, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		entry.OK = ok == 1
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			entry.CreatedAt = ts
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
