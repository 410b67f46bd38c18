package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gyeh/footstats/internal/config"
	"github.com/gyeh/footstats/internal/exitcode"
	"github.com/gyeh/footstats/internal/fetch"
	"github.com/gyeh/footstats/internal/logging"
	"github.com/gyeh/footstats/internal/model"
)

var discoverCmd = &cobra.Command{
	Use:   "discover PAGE",
	Short: "List the season CSVs a country page offers (e.g. englandm.php)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiscover,
}

func init() {
	discoverCmd.Flags().DurationVar(&cfg.Timeout, config.FlagTimeout, config.DefaultTimeout, "Request timeout (0 disables)")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.ValidateHost(); err != nil {
		return fail(log, exitcode.ValidationError, err, "config validation failed")
	}

	client := fetch.NewClient(cfg.Host, cfg.Timeout)
	links, err := client.Discover(ctx, args[0])
	if err != nil {
		return fail(log.With().Str("page", args[0]).Logger(), exitcode.FetchError, err, "discovery failed")
	}

	inCatalog := make(map[model.CatalogEntry]bool)
	for _, e := range cfg.Catalog() {
		inCatalog[model.CatalogEntry{Code: e.Code, Season: e.Season}] = true
	}

	out := cmd.OutOrStdout()
	known := 0
	for _, l := range links {
		mark := " "
		if inCatalog[model.CatalogEntry{Code: l.Code, Season: l.Season}] {
			mark = "*"
			known++
		}
		name := ""
		if league, ok := model.LeagueByCode(l.Code); ok {
			name = league.Name
		}
		fmt.Fprintf(out, "%s %-4s %s  %-28s %s\n", mark, l.Code, l.Season, name, l.URL)
	}
	fmt.Fprintf(out, "\n%d links, %d in catalog (marked *)\n", len(links), known)
	return nil
}
