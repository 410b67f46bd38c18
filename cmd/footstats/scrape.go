package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gyeh/footstats/internal/config"
	"github.com/gyeh/footstats/internal/exitcode"
	"github.com/gyeh/footstats/internal/fetch"
	"github.com/gyeh/footstats/internal/ingest"
	"github.com/gyeh/footstats/internal/logging"
	"github.com/gyeh/footstats/internal/metrics"
	"github.com/gyeh/footstats/internal/model"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch every catalog entry and write the combined and per-league CSVs",
	RunE:  runScrape,
}

func init() {
	f := scrapeCmd.Flags()
	f.StringVar(&cfg.OutDir, config.FlagOutDir, config.DefaultOutDir, "Output directory")
	f.DurationVar(&cfg.Timeout, config.FlagTimeout, config.DefaultTimeout, "Per-request timeout (0 disables)")
	f.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus text-format run metrics to this path")
	rootCmd.AddCommand(scrapeCmd)
}

// phaseExitCode maps a failed pipeline phase to the process exit code.
func phaseExitCode(phase string) int {
	switch phase {
	case "scrape":
		return exitcode.FetchError
	case "clean":
		return exitcode.ValidationError
	default:
		return exitcode.PersistError
	}
}

// printSummary writes the completion line and skipped-entry counts, kinds
// in name order.
func printSummary(cmd *cobra.Command, summary *model.RunSummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scrape complete: %s rows from %d/%d entries (%d skipped, %s rows dropped), %d files in %s (%.1fs)\n",
		humanize.Comma(summary.RowsKept), summary.EntriesFetched, summary.EntriesAttempted,
		len(summary.Skipped), humanize.Comma(summary.RowsDropped), len(summary.Files), cfg.OutDir,
		summary.DurationTotal.Seconds())

	byKind := summary.SkippedByKind()
	kinds := make([]string, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(out, "  skipped %-18s %d\n", kind, byKind[kind])
	}
}

func runScrape(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.Validate(); err != nil {
		return fail(log, exitcode.ValidationError, err, "config validation failed")
	}

	client := fetch.NewClient(cfg.Host, cfg.Timeout)
	m := metrics.NewRun()

	summary, err := ingest.Run(ctx, client, log, &cfg, m)
	if cfg.MetricsFile != "" {
		if werr := m.WriteTextfile(cfg.MetricsFile); werr != nil {
			log.Warn().Err(werr).Str("path", cfg.MetricsFile).Msg("failed to write metrics file")
		}
	}

	if err != nil {
		var pe *ingest.PipelineError
		if errors.As(err, &pe) {
			return fail(log.With().Str("phase", pe.Phase).Logger(), phaseExitCode(pe.Phase), pe.Err, "scrape failed")
		}
		return fail(log, exitcode.FetchError, err, "scrape failed")
	}

	printSummary(cmd, summary)

	if ingest.HasPartialFailure(summary) {
		return &exitError{code: exitcode.PartialSuccess, err: errPartial}
	}
	return nil
}
