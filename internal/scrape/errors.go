package scrape

import (
	"errors"
	"fmt"
)

var (
	ErrFetch          = errors.New("fetch failed")
	ErrMissingElement = errors.New("missing element")
)

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("get %s: status %d", e.URL, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrFetch }

// MissingElementError names the job card (0-based, -1 for a detail page),
// the field and the selector that matched nothing.
type MissingElementError struct {
	Card     int
	Field    string
	Selector string
	URL      string
}

func (e *MissingElementError) Error() string {
	if e.Card < 0 {
		return fmt.Sprintf("detail page %s: %s not found (selector %q)", e.URL, e.Field, e.Selector)
	}
	return fmt.Sprintf("job card %d: %s not found (selector %q)", e.Card, e.Field, e.Selector)
}

func (e *MissingElementError) Unwrap() error { return ErrMissingElement }
