package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/footstats/internal/fetch"
	"github.com/gyeh/footstats/internal/metrics"
	"github.com/gyeh/footstats/internal/model"
)

// Fetcher turns one catalog entry into a row-set.
type Fetcher interface {
	Fetch(ctx context.Context, entry model.CatalogEntry) (*model.RowSet, error)
	URL(entry model.CatalogEntry) string
}

// ScrapeResult holds the fetched row-sets in catalog order plus metrics.
type ScrapeResult struct {
	RowSets      []*model.RowSet
	Skipped      []model.SkippedEntry
	RowsFetched  int64
	LinesSkipped int64
	Duration     time.Duration
}

// Scrape fetches every catalog entry in order, one request at a time.
// Per-entry failures are logged and skipped; the loop only stops early
// when the context is cancelled or the fetcher fails in an unclassified way.
func Scrape(ctx context.Context, f Fetcher, log zerolog.Logger, catalog []model.CatalogEntry, m *metrics.Run) (*ScrapeResult, error) {
	start := time.Now()
	res := &ScrapeResult{RowSets: make([]*model.RowSet, 0, len(catalog))}

	for i, entry := range catalog {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rs, err := f.Fetch(ctx, entry)
		if err != nil {
			var fe *fetch.Error
			if !errors.As(err, &fe) {
				return nil, fmt.Errorf("fetch %s %s: %w", entry.Code, entry.Season, err)
			}
			m.Fetches.WithLabelValues(string(fe.Kind)).Inc()
			res.Skipped = append(res.Skipped, model.SkippedEntry{
				Entry:  entry,
				Kind:   string(fe.Kind),
				Reason: fe.Err.Error(),
			})
			log.Warn().
				Err(fe.Err).
				Str("kind", string(fe.Kind)).
				Str("league", entry.Name).
				Str("season", entry.Season).
				Str("url", f.URL(entry)).
				Msg("entry skipped")
			continue
		}

		m.Fetches.WithLabelValues("ok").Inc()
		m.RowsFetched.Add(float64(len(rs.Rows)))
		m.LinesSkipped.Add(float64(rs.SkippedLines))
		res.RowSets = append(res.RowSets, rs)
		res.RowsFetched += int64(len(rs.Rows))
		res.LinesSkipped += int64(rs.SkippedLines)

		log.Debug().
			Int("n", i+1).
			Int("of", len(catalog)).
			Str("league", entry.Name).
			Str("season", entry.Season).
			Int("rows", len(rs.Rows)).
			Int("lines_skipped", rs.SkippedLines).
			Msg("entry fetched")
	}

	if len(res.RowSets) == 0 {
		return nil, fmt.Errorf("none of %d catalog entries could be fetched", len(catalog))
	}

	res.Duration = time.Since(start)
	log.Info().
		Int("entries_fetched", len(res.RowSets)).
		Int("entries_skipped", len(res.Skipped)).
		Int64("rows_fetched", res.RowsFetched).
		Int64("lines_skipped", res.LinesSkipped).
		Str("duration", res.Duration.String()).
		Msg("scrape complete")

	return res, nil
}
