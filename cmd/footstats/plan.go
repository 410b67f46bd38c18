package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gyeh/footstats/internal/exitcode"
	"github.com/gyeh/footstats/internal/fetch"
	"github.com/gyeh/footstats/internal/logging"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry run: print every URL scrape would fetch (no network)",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateHost(); err != nil {
		return fail(log, exitcode.ValidationError, err, "config validation failed")
	}

	catalog := cfg.Catalog()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== footstats plan ===")
	fmt.Fprintf(out, "Host:    %s\n", cfg.Host)
	fmt.Fprintf(out, "Leagues: %d\n", len(cfg.Leagues))
	fmt.Fprintf(out, "Seasons: %d\n", len(cfg.Seasons))
	fmt.Fprintf(out, "Entries: %d\n", len(catalog))
	fmt.Fprintln(out)
	for _, e := range catalog {
		fmt.Fprintf(out, "%-4s %s  %-28s %s\n", e.Code, e.Season, e.Name, fetch.SeasonURL(cfg.Host, e.Code, e.Season))
	}
	return nil
}
