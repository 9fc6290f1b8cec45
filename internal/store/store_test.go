package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/scrape/types"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Migrate(db.Pool))

	var v int
	require.NoError(t, db.Pool.QueryRow(`PRAGMA user_version;`).Scan(&v))
	require.Equal(t, 1, v)
}

func TestSaveAndListRun(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	res := types.RunResult{
		ListingURL: "https://realpython.github.io/fake-jobs",
		StartedAt:  time.Date(2021, 4, 8, 12, 0, 0, 0, time.UTC),
		Elapsed:    1500 * time.Millisecond,
		Records: []domain.JobRecord{
			{Title: "Senior Python Developer", Company: "Payne, Roberts and Davis", Location: "Stewartbury, AA", DatePosted: "2021-04-08", Description: "Lorem ipsum", DetailURL: "https://x.test/1"},
			{Title: "Energy engineer", Company: "Vasquez-Davidson", Location: "Christopherville, AA", DatePosted: "2021-04-08", Description: "Dolor", DetailURL: "https://x.test/2"},
		},
	}

	id, err := SaveRun(ctx, db.Pool, res)
	require.NoError(t, err)

	got, err := ListRun(ctx, db.Pool, id)
	require.NoError(t, err)
	if diff := cmp.Diff(res.Records, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}

	run, err := LatestRun(ctx, db.Pool)
	require.NoError(t, err)
	require.Equal(t, id, run.ID)
	require.Equal(t, 2, run.JobCount)
	require.True(t, res.StartedAt.Equal(run.StartedAt))
	require.Equal(t, res.Elapsed, run.Elapsed)
}

func TestLatestRunEmpty(t *testing.T) {
	db := openTemp(t)
	_, err := LatestRun(context.Background(), db.Pool)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLatestRunBadStartedAt(t *testing.T) {
	db := openTemp(t)
	_, err := db.Pool.Exec(`INSERT INTO runs(listing_url, started_at, elapsed_ms, job_count) VALUES ('https://x.test', 'yesterday', 10, 0);`)
	require.NoError(t, err)

	_, err = LatestRun(context.Background(), db.Pool)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse started_at")
}
