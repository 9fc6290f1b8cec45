package scrape

import (
	"errors"
	"fmt"
	"strings"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

type Extractor struct {
	sel config.Selectors
}

func NewExtractor(sel config.Selectors) *Extractor {
	return &Extractor{sel: sel}
}

// ExtractListing reads every job card in document order. Descriptions are
// left empty; DetailURL is absolute (relative hrefs resolve against base).
// The first card with a missing element fails the whole listing.
func (e *Extractor) ExtractListing(doc *goquery.Document, base string) ([]domain.JobRecord, error) {
	var (
		out      []domain.JobRecord
		firstErr error
	)
	doc.Find(e.sel.JobCard).EachWithBreak(func(i int, card *goquery.Selection) bool {
		rec, err := e.extractCard(i, card, base)
		if err != nil {
			firstErr = err
			return false
		}
		out = append(out, rec)
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func (e *Extractor) extractCard(i int, card *goquery.Selection, base string) (domain.JobRecord, error) {
	var rec domain.JobRecord
	var err error

	if rec.Title, err = requireText(i, card, "title", e.sel.Title); err != nil {
		return rec, err
	}
	if rec.Company, err = requireText(i, card, "company", e.sel.Company); err != nil {
		return rec, err
	}
	if rec.Location, err = requireText(i, card, "location", e.sel.Location); err != nil {
		return rec, err
	}
	rec.Location = strings.TrimSpace(rec.Location)
	dateBox := card.Find(e.sel.DateContainer).First()
	if dateBox.Length() == 0 {
		return rec, &MissingElementError{Card: i, Field: "date", Selector: e.sel.DateContainer}
	}
	if rec.DatePosted, err = requireText(i, dateBox, "date", e.sel.Date); err != nil {
		var me *MissingElementError
		if errors.As(err, &me) {
			me.Selector = "first " + e.sel.DateContainer + " " + e.sel.Date
		}
		return rec, err
	}

	href, err := e.detailHref(i, card)
	if err != nil {
		return rec, err
	}
	if rec.DetailURL, err = util.ResolveURL(base, href); err != nil {
		return rec, fmt.Errorf("job card %d: detail link: %w", i, err)
	}
	return rec, nil
}

// detailHref finds the footer link by its visible label, not its position.
func (e *Extractor) detailHref(i int, card *goquery.Selection) (string, error) {
	link := card.Find(e.sel.DetailLink).FilterFunction(func(_ int, a *goquery.Selection) bool {
		return util.SameLabel(a.Text(), e.sel.DetailLinkLabel)
	}).First()
	if link.Length() == 0 {
		return "", &MissingElementError{
			Card:     i,
			Field:    "detail link",
			Selector: fmt.Sprintf("%s labelled %q", e.sel.DetailLink, e.sel.DetailLinkLabel),
		}
	}
	href, ok := link.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return "", &MissingElementError{Card: i, Field: "detail link href", Selector: e.sel.DetailLink + "[href]"}
	}
	return href, nil
}

// ExtractDescription returns the text of the first Description element inside
// the first DescriptionContainer of a detail page.
func (e *Extractor) ExtractDescription(doc *goquery.Document, url string) (string, error) {
	box := doc.Find(e.sel.DescriptionContainer).First()
	if box.Length() == 0 {
		return "", &MissingElementError{Card: -1, Field: "description container", Selector: e.sel.DescriptionContainer, URL: url}
	}
	p := box.Find(e.sel.Description).First()
	if p.Length() == 0 {
		return "", &MissingElementError{Card: -1, Field: "description", Selector: e.sel.Description, URL: url}
	}
	return p.Text(), nil
}

func requireText(i int, card *goquery.Selection, field, selector string) (string, error) {
	s := card.Find(selector).First()
	if s.Length() == 0 {
		return "", &MissingElementError{Card: i, Field: field, Selector: selector}
	}
	return s.Text(), nil
}
