// config/overlay.go
package config

import "strings"

// Overrides carries command-line values; empty fields leave the config alone.
type Overrides struct {
	ListingURL string
	CSVPath    string
	SQLitePath string
	Summary    bool
}

func Overlay(cfg *Config, o Overrides) {
	if v := strings.TrimSpace(o.ListingURL); v != "" {
		cfg.Source.ListingURL = v
	}
	if v := strings.TrimSpace(o.CSVPath); v != "" {
		cfg.Output.CSVPath = v
	}
	if v := strings.TrimSpace(o.SQLitePath); v != "" {
		cfg.Output.SQLitePath = v
	}
	if o.Summary {
		cfg.Output.Summary = true
	}
}
