package main

import (
	"log"
	"os"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/scrape"

	"github.com/spf13/cobra"
)

var (
	configPath string
	overrides  config.Overrides
)

var rootCmd = &cobra.Command{
	Use:           "jobscrape",
	Short:         "Scrapes a job listing page and its detail pages into a CSV file.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		res, err := scrape.RunOnce(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		if cfg.Output.Summary {
			printSummary(cmd.OutOrStdout(), res.Records)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", os.Getenv("JOBSCRAPE_CONFIG"), "YAML config file (defaults are used when missing)")

	rootCmd.Flags().StringVar(&overrides.ListingURL, "url", "", "listing page to scrape")
	rootCmd.Flags().StringVar(&overrides.CSVPath, "out", "", "CSV output file")
	rootCmd.Flags().StringVar(&overrides.SQLitePath, "db", "", "also archive the run to this SQLite file")
	rootCmd.Flags().BoolVar(&overrides.Summary, "summary", false, "print a table of the scraped jobs")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if configPath != "" {
		log.Printf("[config] using %s", configPath)
	}
	config.Overlay(&cfg, overrides)
	return cfg, nil
}
