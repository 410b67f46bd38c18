package ingest

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/footstats/internal/metrics"
	"github.com/gyeh/footstats/internal/model"
	"github.com/gyeh/footstats/internal/normalize"
)

// CleanResult holds the combined dataset and metrics from the clean phase.
type CleanResult struct {
	Matches     []model.Match
	RowsIn      int64
	RowsDropped int64
	Duration    time.Duration
}

// Combine concatenates row-sets in the given order and converts every row
// to a Match, dropping rows with any missing working field. There is no
// sorting and no deduplication across row-sets.
func Combine(rowSets []*model.RowSet) (matches []model.Match, dropped int64) {
	total := 0
	for _, rs := range rowSets {
		total += len(rs.Rows)
	}
	matches = make([]model.Match, 0, total)

	for _, rs := range rowSets {
		for i := range rs.Rows {
			m, err := normalize.ToMatch(&rs.Rows[i])
			if err != nil {
				dropped++
				continue
			}
			matches = append(matches, *m)
		}
	}
	return matches, dropped
}

// Clean builds the combined dataset. It fails only when no row survives.
func Clean(log zerolog.Logger, rowSets []*model.RowSet, m *metrics.Run) (*CleanResult, error) {
	start := time.Now()

	matches, dropped := Combine(rowSets)
	rowsIn := int64(len(matches)) + dropped
	if len(matches) == 0 {
		return nil, fmt.Errorf("no rows survived cleaning (%d dropped)", dropped)
	}

	m.RowsDropped.Add(float64(dropped))
	m.RowsKept.Add(float64(len(matches)))

	dur := time.Since(start)
	log.Info().
		Int64("rows_in", rowsIn).
		Int("rows_kept", len(matches)).
		Int64("rows_dropped", dropped).
		Str("duration", dur.String()).
		Msg("clean complete")

	return &CleanResult{
		Matches:     matches,
		RowsIn:      rowsIn,
		RowsDropped: dropped,
		Duration:    dur,
	}, nil
}
