package scrape

import (
	"context"
	"log"
	"time"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/scrape/types"
)

type Options struct {
	ListingURL    string
	Fetcher       types.PageFetcher
	Selectors     config.Selectors
	DetailWorkers int
}

// Scrape fetches the listing page, extracts every job card and hydrates each
// one from its detail page. Any error aborts the whole scrape; no partial
// result is returned.
func Scrape(ctx context.Context, opts Options) (types.RunResult, error) {
	start := time.Now()
	res := types.RunResult{ListingURL: opts.ListingURL, StartedAt: start.UTC()}

	doc, err := opts.Fetcher.Fetch(ctx, opts.ListingURL)
	if err != nil {
		return res, err
	}
	log.Printf("[scrape] ================= %s =================", opts.ListingURL)

	base := opts.ListingURL
	if doc.Url != nil {
		base = doc.Url.String()
	}

	ex := NewExtractor(opts.Selectors)
	log.Printf("[scrape] scraping jobs")
	recs, err := ex.ExtractListing(doc, base)
	if err != nil {
		return res, err
	}
	if err := Hydrate(ctx, opts.Fetcher, ex, recs, opts.DetailWorkers); err != nil {
		return res, err
	}
	log.Printf("[scrape] done searching")

	res.Records = recs
	res.Elapsed = time.Since(start)
	return res, nil
}
