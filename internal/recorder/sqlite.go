package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db     *sql.DB
	mu     sync.Mutex
	logger *zap.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, logger *zap.Logger) (*SQLiteRecorder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while a run writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, logger: logger}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			mode        TEXT NOT NULL,
			started_at  INTEGER NOT NULL,
			finished_at INTEGER,
			status      TEXT,
			first_date  TEXT,
			last_date   TEXT,
			new_dates   INTEGER,
			symbols     INTEGER,
			error       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS group_updates (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     TEXT NOT NULL,
			group_key  TEXT NOT NULL,
			outcome    TEXT,
			symbols    INTEGER,
			dates      INTEGER,
			added      INTEGER,
			absent     INTEGER,
			missing    INTEGER,
			size_bytes INTEGER,
			note       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_group_updates_run ON group_updates(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts the run, replacing an earlier row with the same id.
func (r *SQLiteRecorder) RecordRun(run *RunEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var finished interface{}
	if !run.FinishedAt.IsZero() {
		finished = run.FinishedAt.Unix()
	}
	_, err := r.db.Exec(`INSERT OR REPLACE INTO runs
		(id, mode, started_at, finished_at, status, first_date, last_date, new_dates, symbols, error)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		run.ID, run.Mode, run.StartedAt.Unix(), finished, run.Status,
		run.FirstDate, run.LastDate, run.NewDates, run.Symbols, run.Error,
	)
	return err
}

func (r *SQLiteRecorder) RecordGroup(upd *GroupUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO group_updates
		(run_id, group_key, outcome, symbols, dates, added, absent, missing, size_bytes, note)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		upd.RunID, upd.Key, upd.Outcome, upd.Symbols, upd.Dates,
		upd.Added, upd.Absent, upd.Missing, upd.SizeBytes, upd.Note,
	)
	return err
}

// RecentRuns returns up to limit runs, newest first.
func (r *SQLiteRecorder) RecentRuns(limit int) ([]RunEvent, error) {
	rows, err := r.db.Query(`SELECT id, mode, started_at, finished_at, status,
		first_date, last_date, new_dates, symbols, error
		FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunEvent
	for rows.Next() {
		var (
			ev       RunEvent
			started  int64
			finished sql.NullInt64
		)
		if err := rows.Scan(&ev.ID, &ev.Mode, &started, &finished, &ev.Status,
			&ev.FirstDate, &ev.LastDate, &ev.NewDates, &ev.Symbols, &ev.Error); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		ev.StartedAt = time.Unix(started, 0)
		if finished.Valid {
			ev.FinishedAt = time.Unix(finished.Int64, 0)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.logger.Info("closing sqlite recorder")
	return r.db.Close()
}
