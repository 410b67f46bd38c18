package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/footstats/internal/config"
	"github.com/gyeh/footstats/internal/fetch"
	"github.com/gyeh/footstats/internal/metrics"
	"github.com/gyeh/footstats/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full scrape pipeline: preflight → scrape → clean → save →
// cleanup. Nothing is written to the output directory unless scrape and
// clean both succeed.
func Run(ctx context.Context, f Fetcher, log zerolog.Logger, cfg *config.Config, m *metrics.Run) (*model.RunSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	pf, err := Preflight(log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}
	log = log.With().Str("run_id", pf.RunID.String()).Logger()

	// Phase 2: Scrape
	log.Info().Int("entries", len(pf.Catalog)).Msg("starting scrape")
	scrapeResult, err := Scrape(ctx, f, log, pf.Catalog, m)
	if err != nil {
		return nil, &PipelineError{Phase: "scrape", Err: err}
	}
	m.PhaseSeconds.WithLabelValues("scrape").Set(scrapeResult.Duration.Seconds())

	// Phase 3: Clean
	log.Info().Int("row_sets", len(scrapeResult.RowSets)).Msg("starting clean")
	cleanResult, err := Clean(log, scrapeResult.RowSets, m)
	if err != nil {
		return nil, &PipelineError{Phase: "clean", Err: err}
	}
	m.PhaseSeconds.WithLabelValues("clean").Set(cleanResult.Duration.Seconds())

	// Phase 4: Save
	log.Info().Str("out_dir", pf.OutDir).Msg("starting save")
	saveResult, err := Save(log, pf.OutDir, cleanResult.Matches, m)
	if err != nil {
		if cerr := Cleanup(log, pf.OutDir); cerr != nil {
			log.Warn().Err(cerr).Msg("temp file cleanup failed (non-fatal)")
		}
		return nil, &PipelineError{Phase: "save", Err: err}
	}
	m.PhaseSeconds.WithLabelValues("save").Set(saveResult.Duration.Seconds())

	// Phase 5: Cleanup leftovers from earlier interrupted runs
	if err := Cleanup(log, pf.OutDir); err != nil {
		log.Warn().Err(err).Msg("temp file cleanup failed (non-fatal)")
	}

	summary := &model.RunSummary{
		RunID:            pf.RunID.String(),
		EntriesAttempted: len(pf.Catalog),
		EntriesFetched:   len(scrapeResult.RowSets),
		Skipped:          scrapeResult.Skipped,
		RowsFetched:      scrapeResult.RowsFetched,
		LinesSkipped:     scrapeResult.LinesSkipped,
		RowsDropped:      cleanResult.RowsDropped,
		RowsKept:         int64(len(cleanResult.Matches)),
		Files:            saveResult.Files,
		DurationScrape:   scrapeResult.Duration,
		DurationClean:    cleanResult.Duration,
		DurationSave:     saveResult.Duration,
		DurationTotal:    time.Since(totalStart),
	}
	m.LastSuccess.SetToCurrentTime()

	log.Info().
		Int("entries_attempted", summary.EntriesAttempted).
		Int("entries_fetched", summary.EntriesFetched).
		Int("entries_skipped", len(summary.Skipped)).
		Int64("rows_fetched", summary.RowsFetched).
		Int64("rows_dropped", summary.RowsDropped).
		Int64("rows_kept", summary.RowsKept).
		Int("files_written", len(summary.Files)).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("scrape pipeline complete")

	return summary, nil
}

// HasPartialFailure reports whether any entry was skipped for a reason other
// than the file not existing upstream. Missing seasons are routine for the
// lower divisions.
func HasPartialFailure(s *model.RunSummary) bool {
	for _, sk := range s.Skipped {
		if sk.Kind != string(fetch.KindNotFound) {
			return true
		}
	}
	return false
}
