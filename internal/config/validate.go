package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	// Notes describe accepted defaults worth knowing about; a run does not log them.
	Notes []string `json:"notes"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v *Validation) addNote(format string, args ...any) {
	v.Notes = append(v.Notes, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a trimmed copy of cfg plus what is wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Source.ListingURL = strings.TrimSpace(out.Source.ListingURL)
	out.Output.CSVPath = strings.TrimSpace(out.Output.CSVPath)
	out.Output.SQLitePath = strings.TrimSpace(out.Output.SQLitePath)

	u, err := url.Parse(out.Source.ListingURL)
	switch {
	case out.Source.ListingURL == "":
		res.addErr("source.listing_url is required")
	case err != nil:
		res.addErr("source.listing_url is not a url: %v", err)
	case (u.Scheme != "http" && u.Scheme != "https") || u.Host == "":
		res.addErr("source.listing_url must be an absolute http(s) url, got %q", out.Source.ListingURL)
	}

	if out.Source.TimeoutSeconds < 0 {
		res.addErr("source.timeout_seconds must be >= 0")
	} else if out.Source.TimeoutSeconds == 0 {
		res.addNote("source.timeout_seconds is 0; an unresponsive server blocks the run forever.")
	}

	if out.Source.RequestsPerSecond < 0 {
		res.addErr("source.requests_per_second must be >= 0")
	}
	if out.Source.RequestsPerSecond > 0 && out.Source.Burst <= 0 {
		res.addErr("source.burst must be > 0 when requests_per_second is set")
	}
	if out.Source.DetailWorkers <= 0 {
		out.Source.DetailWorkers = 1
	} else if out.Source.DetailWorkers > 16 {
		res.addWarn("source.detail_workers is high (%d) and may get you rate limited.", out.Source.DetailWorkers)
	}

	required := []struct{ name, val string }{
		{"selectors.job_card", out.Selectors.JobCard},
		{"selectors.title", out.Selectors.Title},
		{"selectors.company", out.Selectors.Company},
		{"selectors.location", out.Selectors.Location},
		{"selectors.date_container", out.Selectors.DateContainer},
		{"selectors.date", out.Selectors.Date},
		{"selectors.detail_link", out.Selectors.DetailLink},
		{"selectors.detail_link_label", out.Selectors.DetailLinkLabel},
		{"selectors.description_container", out.Selectors.DescriptionContainer},
		{"selectors.description", out.Selectors.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			res.addErr("%s is required", r.name)
		}
	}

	if out.Output.CSVPath == "" {
		res.addErr("output.csv_path is required")
	}
	if out.Output.SQLitePath != "" && out.Output.SQLitePath == out.Output.CSVPath {
		res.addErr("output.sqlite_path and output.csv_path must differ")
	}

	return out, res
}
