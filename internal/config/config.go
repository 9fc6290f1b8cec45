// engine/internal/config/config.go
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultListingURL = "https://realpython.github.io/fake-jobs"

type Source struct {
	ListingURL        string  `yaml:"listing_url"`
	UserAgent         string  `yaml:"user_agent"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`     // 0 = no timeout
	RequestsPerSecond float64 `yaml:"requests_per_second"` // 0 = unlimited
	Burst             int     `yaml:"burst"`
	DetailWorkers     int     `yaml:"detail_workers"`
}

// Selectors are goquery selectors. Everything but JobCard, DescriptionContainer
// and Description is evaluated inside a single job card.
type Selectors struct {
	JobCard              string `yaml:"job_card"`
	Title                string `yaml:"title"`
	Company              string `yaml:"company"`
	Location             string `yaml:"location"`
	DateContainer        string `yaml:"date_container"`
	Date                 string `yaml:"date"` // inside the first DateContainer
	DetailLink           string `yaml:"detail_link"`
	DetailLinkLabel      string `yaml:"detail_link_label"`
	DescriptionContainer string `yaml:"description_container"`
	Description          string `yaml:"description"`
}

type Output struct {
	CSVPath    string `yaml:"csv_path"`
	SQLitePath string `yaml:"sqlite_path"`
	Summary    bool   `yaml:"summary"`
}

type Config struct {
	Source    Source    `yaml:"source"`
	Selectors Selectors `yaml:"selectors"`
	Output    Output    `yaml:"output"`
}

// Default matches the markup of the fake-jobs listing.
func Default() Config {
	return Config{
		Source: Source{
			ListingURL:    DefaultListingURL,
			Burst:         1,
			DetailWorkers: 1,
		},
		Selectors: Selectors{
			JobCard:              "div.column",
			Title:                "h2.title",
			Company:              "h3.subtitle",
			Location:             "p.location",
			DateContainer:        "p.is-small",
			Date:                 "time",
			DetailLink:           "a.card-footer-item",
			DetailLinkLabel:      "Apply",
			DescriptionContainer: "div.content",
			Description:          "p",
		},
		Output: Output{
			CSVPath: "jobs.csv",
		},
	}
}

// Load reads path on top of Default. An empty or missing path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
