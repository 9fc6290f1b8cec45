package scrape

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/export"
	"jobscrape-engine/internal/scrape/types"
	"jobscrape-engine/internal/store"
)

// RunOnce is the whole pipeline: lock the output, scrape, write the CSV and,
// if configured, archive the run to SQLite. fetcher may be nil to use the
// HTTP fetcher described by cfg.Source.
func RunOnce(ctx context.Context, cfg config.Config, fetcher types.PageFetcher) (types.RunResult, error) {
	start := time.Now()

	cfg, v := config.NormalizeAndValidate(cfg)
	if !v.OK() {
		return types.RunResult{}, config.Validate(cfg)
	}
	for _, w := range v.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if fetcher == nil {
		fetcher = NewFetcherFromConfig(cfg.Source)
	}

	unlock, err := export.Lock(cfg.Output.CSVPath)
	if err != nil {
		return types.RunResult{}, err
	}
	defer func() { _ = unlock() }()

	res, err := Scrape(ctx, Options{
		ListingURL:    cfg.Source.ListingURL,
		Fetcher:       fetcher,
		Selectors:     cfg.Selectors,
		DetailWorkers: cfg.Source.DetailWorkers,
	})
	if err != nil {
		return res, err
	}

	log.Printf("[export] writing %d jobs to %s", len(res.Records), cfg.Output.CSVPath)
	if err := export.WriteCSV(cfg.Output.CSVPath, res.Records); err != nil {
		return res, err
	}

	if cfg.Output.SQLitePath != "" {
		if err := archive(ctx, cfg.Output.SQLitePath, res); err != nil {
			return res, err
		}
	}

	log.Printf("[engine] ================== DONE ==================")
	log.Printf("[engine] %.3f seconds", time.Since(start).Seconds())
	return res, nil
}

func archive(ctx context.Context, path string, res types.RunResult) error {
	db, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer db.Close()

	id, err := store.SaveRun(ctx, db.Pool, res)
	if err != nil {
		return fmt.Errorf("archive run: %w", err)
	}
	log.Printf("[store] saved run=%d jobs=%d to %s", id, len(res.Records), path)
	return nil
}
