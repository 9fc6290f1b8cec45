package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

type HTTPFetcher struct {
	hc        *http.Client
	limiter   *util.HostLimiter
	userAgent string
}

// NewHTTPFetcher builds a fetcher. timeout <= 0 means the request may block
// forever; limiter may be nil.
func NewHTTPFetcher(timeout time.Duration, limiter *util.HostLimiter, userAgent string) *HTTPFetcher {
	hc := &http.Client{}
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &HTTPFetcher{hc: hc, limiter: limiter, userAgent: userAgent}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request %s: %w", ErrFetch, url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	if err := f.limiter.WaitURL(ctx, url); err != nil {
		return nil, fmt.Errorf("%w: rate limit %s: %w", ErrFetch, url, err)
	}

	res, err := f.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrFetch, url, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: res.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse html %s: %w", ErrFetch, url, err)
	}
	// after redirects; relative links resolve against this
	doc.Url = res.Request.URL
	return doc, nil
}

func NewFetcherFromConfig(src config.Source) *HTTPFetcher {
	return NewHTTPFetcher(
		time.Duration(src.TimeoutSeconds)*time.Second,
		util.NewHostLimiter(src.RequestsPerSecond, src.Burst),
		src.UserAgent,
	)
}
