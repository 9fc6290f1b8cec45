package main

import (
	"database/sql"
	"errors"
	"fmt"

	"jobscrape-engine/internal/config"
	"jobscrape-engine/internal/store"

	"github.com/spf13/cobra"
)

var lastRunCmd = &cobra.Command{
	Use:   "last-run [db]",
	Short: "Prints the most recent run archived in the SQLite file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else if cfg, err := config.Load(configPath); err == nil {
			path = cfg.Output.SQLitePath
		}
		if path == "" {
			return errors.New("no archive: pass a path or set output.sqlite_path")
		}

		db, err := store.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		run, err := store.LatestRun(cmd.Context(), db.Pool)
		if errors.Is(err, sql.ErrNoRows) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: no runs yet\n", path)
			return nil
		}
		if err != nil {
			return err
		}
		recs, err := store.ListRun(cmd.Context(), db.Pool, run.ID)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "run %d: %s at %s, %d jobs in %s\n",
			run.ID, run.ListingURL, run.StartedAt.Format("2006-01-02 15:04:05"), run.JobCount, run.Elapsed)
		printSummary(cmd.OutOrStdout(), recs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lastRunCmd)
}
