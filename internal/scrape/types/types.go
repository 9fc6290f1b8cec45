package types

import (
	"context"
	"time"

	"jobscrape-engine/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// PageFetcher turns a url into a parsed HTML document.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

type RunResult struct {
	ListingURL string
	StartedAt  time.Time
	Elapsed    time.Duration
	Records    []domain.JobRecord
}
