package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"shrink/internal/batch"
	"shrink/internal/faults"
)

// Store persists completed batch runs in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database inside dir.
func Open(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Run is one recorded batch.
type Run struct {
	ID             string
	Directory      string
	StartedAt      time.Time
	FinishedAt     time.Time
	TotalFiles     int
	Succeeded      int
	Failed         int
	OriginalMB     float64
	CompressedMB   float64
	ElapsedSeconds float64
}

// NewRun builds a Run row from a finished batch report.
func NewRun(report batch.Report, startedAt time.Time) Run {
	summary := report.Summary
	return Run{
		ID:             uuid.NewString(),
		Directory:      summary.Directory,
		StartedAt:      startedAt,
		FinishedAt:     startedAt.Add(summary.Elapsed),
		TotalFiles:     summary.TotalFiles,
		Succeeded:      summary.Succeeded,
		Failed:         summary.Failed,
		OriginalMB:     summary.OriginalMB,
		CompressedMB:   summary.CompressedMB,
		ElapsedSeconds: summary.Elapsed.Seconds(),
	}
}

// RecordRun stores the run row plus one row per processed file.
func (s *Store) RecordRun(ctx context.Context, run Run, outcomes []batch.Outcome) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
INSERT INTO batches (id, directory, started_at, finished_at, total_files, succeeded, failed, original_mb, compressed_mb, elapsed_seconds)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Directory,
		run.StartedAt.UTC().Format(time.RFC3339),
		run.FinishedAt.UTC().Format(time.RFC3339),
		run.TotalFiles,
		run.Succeeded,
		run.Failed,
		run.OriginalMB,
		run.CompressedMB,
		run.ElapsedSeconds,
	)
	if err != nil {
		return fmt.Errorf("insert batch row: %w", err)
	}

	for _, outcome := range outcomes {
		status := "ok"
		errorKind := ""
		errorText := ""
		if outcome.Err != nil {
			status = "failed"
			errorKind = faults.Kind(outcome.Err)
			errorText = outcome.Err.Error()
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO batch_files (batch_id, path, output_path, status, error_kind, error_text, original_mb, compressed_mb, reduction_pct)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			outcome.Path,
			outcome.Output,
			status,
			errorKind,
			errorText,
			outcome.Result.OriginalMB,
			outcome.Result.CompressedMB,
			outcome.Result.ReductionPct,
		)
		if err != nil {
			return fmt.Errorf("insert file row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, directory, started_at, finished_at, total_files, succeeded, failed, original_mb, compressed_mb, elapsed_seconds
FROM batches ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, finished string
		if err := rows.Scan(
			&run.ID,
			&run.Directory,
			&started,
			&finished,
			&run.TotalFiles,
			&run.Succeeded,
			&run.Failed,
			&run.OriginalMB,
			&run.CompressedMB,
			&run.ElapsedSeconds,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FileRecord is one per-file row of a recorded run.
type FileRecord struct {
	Path         string
	OutputPath   string
	Status       string
	ErrorKind    string
	ErrorText    string
	OriginalMB   float64
	CompressedMB float64
	ReductionPct float64
}

// RunFiles returns the per-file rows of a run, in processing order.
func (s *Store) RunFiles(ctx context.Context, runID string) ([]FileRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT path, output_path, status, error_kind, error_text, original_mb, compressed_mb, reduction_pct
FROM batch_files WHERE batch_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run files: %w", err)
	}
	defer rows.Close()

	var records []FileRecord
	for rows.Next() {
		var rec FileRecord
		if err := rows.Scan(
			&rec.Path,
			&rec.OutputPath,
			&rec.Status,
			&rec.ErrorKind,
			&rec.ErrorText,
			&rec.OriginalMB,
			&rec.CompressedMB,
			&rec.ReductionPct,
		); err != nil {
			return nil, fmt.Errorf("scan file row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
