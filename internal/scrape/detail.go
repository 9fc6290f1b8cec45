package scrape

import (
	"context"
	"fmt"
	"log"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/scrape/types"

	"golang.org/x/sync/errgroup"
)

// Hydrate fetches every record's detail page and fills in Description.
// workers <= 1 walks the records one at a time in order. With more workers
// the first failure cancels the rest; records keep their positions either way.
func Hydrate(ctx context.Context, f types.PageFetcher, e *Extractor, recs []domain.JobRecord, workers int) error {
	if workers <= 1 {
		for i := range recs {
			if err := hydrateOne(ctx, f, e, &recs[i]); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range recs {
		rec := &recs[i]
		g.Go(func() error {
			return hydrateOne(gctx, f, e, rec)
		})
	}
	return g.Wait()
}

func hydrateOne(ctx context.Context, f types.PageFetcher, e *Extractor, rec *domain.JobRecord) error {
	doc, err := f.Fetch(ctx, rec.DetailURL)
	if err != nil {
		return fmt.Errorf("job %q: %w", rec.Title, err)
	}
	desc, err := e.ExtractDescription(doc, rec.DetailURL)
	if err != nil {
		return fmt.Errorf("job %q: %w", rec.Title, err)
	}
	rec.Description = desc
	log.Printf("[scrape] found %s job", rec.Title)
	return nil
}
