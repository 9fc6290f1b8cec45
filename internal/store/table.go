package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/scrape/types"
)

type Run struct {
	ID         int64
	ListingURL string
	StartedAt  time.Time
	Elapsed    time.Duration
	JobCount   int
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  listing_url TEXT NOT NULL,
  started_at TEXT NOT NULL,
  elapsed_ms INTEGER NOT NULL,
  job_count INTEGER NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  date_posted TEXT NOT NULL,
  description TEXT NOT NULL,
  detail_url TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (run_id, position)
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_runs_started_at
ON runs(started_at);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveRun stores a finished run and its records in one transaction.
func SaveRun(ctx context.Context, db *sql.DB, res types.RunResult) (runID int64, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	r, err := tx.ExecContext(ctx, `
INSERT INTO runs(listing_url, started_at, elapsed_ms, job_count)
VALUES(?,?,?,?);`,
		res.ListingURL,
		res.StartedAt.UTC().Format(time.RFC3339Nano),
		res.Elapsed.Milliseconds(),
		len(res.Records),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err = r.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO jobs(run_id, position, title, company, location, date_posted, description, detail_url)
VALUES(?,?,?,?,?,?,?,?);`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, j := range res.Records {
		if _, err := stmt.ExecContext(ctx, runID, i, j.Title, j.Company, j.Location, j.DatePosted, j.Description, j.DetailURL); err != nil {
			return 0, fmt.Errorf("insert job %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

func LatestRun(ctx context.Context, db *sql.DB) (Run, error) {
	var r Run
	var started string
	var elapsedMS int64
	err := db.QueryRowContext(ctx, `
SELECT id, listing_url, started_at, elapsed_ms, job_count
FROM runs
ORDER BY id DESC
LIMIT 1;`).Scan(&r.ID, &r.ListingURL, &started, &elapsedMS, &r.JobCount)
	if err != nil {
		return Run{}, err
	}
	if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return Run{}, fmt.Errorf("run %d: parse started_at: %w", r.ID, err)
	}
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	return r, nil
}

// ListRun returns the records of one run in their original order.
func ListRun(ctx context.Context, db *sql.DB, runID int64) ([]domain.JobRecord, error) {
	rows, err := db.QueryContext(ctx, `
SELECT title, company, location, date_posted, description, detail_url
FROM jobs
WHERE run_id = ?
ORDER BY position ASC;`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobRecord
	for rows.Next() {
		var j domain.JobRecord
		if err := rows.Scan(&j.Title, &j.Company, &j.Location, &j.DatePosted, &j.Description, &j.DetailURL); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
