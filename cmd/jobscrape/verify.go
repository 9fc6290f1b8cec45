package main

import (
	"fmt"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/export"

	"github.com/spf13/cobra"
)

var verifySummary bool

var verifyCmd = &cobra.Command{
	Use:   "verify [csv]",
	Short: "Reads back a CSV written by jobscrape and reports its rows.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Default().Output.CSVPath
		if len(args) == 1 {
			path = args[0]
		} else if cfg, err := config.Load(configPath); err == nil {
			path = cfg.Output.CSVPath
		}

		recs, err := export.ReadCSV(path)
		if err != nil {
			return fmt.Errorf("verify %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d jobs\n", path, len(recs))
		if verifySummary {
			printSummary(cmd.OutOrStdout(), recs)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&verifySummary, "summary", false, "print a table of the jobs")
	rootCmd.AddCommand(verifyCmd)
}
