package main

import (
	"fmt"

	"jobscrape-engine/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the YAML config.",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Writes the default config to path (config.yml by default) unless it exists.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "config.yml"
		if len(args) == 1 {
			path = args[0]
		}
		created, err := config.EnsureConfig(path)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
		}
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the config given by --config.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		_, v := config.NormalizeAndValidate(cfg)
		for _, w := range v.Warnings {
			fmt.Fprintln(cmd.OutOrStdout(), "warning:", w)
		}
		for _, n := range v.Notes {
			fmt.Fprintln(cmd.OutOrStdout(), "note:", n)
		}
		if !v.OK() {
			return config.Validate(cfg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configCheckCmd)
	rootCmd.AddCommand(configCmd)
}
