package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultListingURL, cfg.Source.ListingURL)
	require.Equal(t, "jobs.csv", cfg.Output.CSVPath)
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
source:
  listing_url: http://localhost:8080/jobs
  detail_workers: 4
selectors:
  detail_link_label: Details
output:
  sqlite_path: runs.db
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/jobs", cfg.Source.ListingURL)
	require.Equal(t, 4, cfg.Source.DetailWorkers)
	require.Equal(t, "Details", cfg.Selectors.DetailLinkLabel)
	require.Equal(t, "runs.db", cfg.Output.SQLitePath)

	// untouched keys keep their defaults
	require.Equal(t, "div.column", cfg.Selectors.JobCard)
	require.Equal(t, "jobs.csv", cfg.Output.CSVPath)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("source: [not, a, map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestNormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty url", func(c *Config) { c.Source.ListingURL = "  " }, true},
		{"relative url", func(c *Config) { c.Source.ListingURL = "/fake-jobs" }, true},
		{"ftp url", func(c *Config) { c.Source.ListingURL = "ftp://example.com/jobs" }, true},
		{"negative timeout", func(c *Config) { c.Source.TimeoutSeconds = -1 }, true},
		{"rate without burst", func(c *Config) {
			c.Source.RequestsPerSecond = 2
			c.Source.Burst = 0
		}, true},
		{"missing selector", func(c *Config) { c.Selectors.Title = "" }, true},
		{"missing label", func(c *Config) { c.Selectors.DetailLinkLabel = "" }, true},
		{"no csv path", func(c *Config) { c.Output.CSVPath = "" }, true},
		{"same output paths", func(c *Config) { c.Output.SQLitePath = c.Output.CSVPath }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			_, res := NormalizeAndValidate(cfg)
			require.Equal(t, !tt.wantErr, res.OK(), "errors: %v", res.Errors)
		})
	}
}

func TestNormalizeFixesWorkers(t *testing.T) {
	cfg := Default()
	cfg.Source.DetailWorkers = 0
	cfg.Source.ListingURL = "  " + DefaultListingURL + "  "

	out, res := NormalizeAndValidate(cfg)
	require.True(t, res.OK())
	require.Equal(t, 1, out.Source.DetailWorkers)
	require.Equal(t, DefaultListingURL, out.Source.ListingURL)
	require.Empty(t, res.Warnings)
	require.Len(t, res.Notes, 1) // timeout_seconds == 0
}

func TestEnsureConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	created, err := EnsureConfig(path)
	require.NoError(t, err)
	require.True(t, created)

	created, err = EnsureConfig(path)
	require.NoError(t, err)
	require.False(t, created)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := Default()
	cfg.Output.CSVPath = ""

	require.Error(t, SaveAtomic(path, cfg))
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOverlay(t *testing.T) {
	cfg := Default()
	Overlay(&cfg, Overrides{ListingURL: " http://x.test/jobs ", SQLitePath: "a.db", Summary: true})

	require.Equal(t, "http://x.test/jobs", cfg.Source.ListingURL)
	require.Equal(t, "jobs.csv", cfg.Output.CSVPath)
	require.Equal(t, "a.db", cfg.Output.SQLitePath)
	require.True(t, cfg.Output.Summary)
}
