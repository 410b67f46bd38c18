package ingest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/footstats/internal/config"
	"github.com/gyeh/footstats/internal/csvio"
	"github.com/gyeh/footstats/internal/metrics"
	"github.com/gyeh/footstats/internal/model"
)

// SaveResult holds the files written by the save phase.
type SaveResult struct {
	Files    []model.WrittenFile
	Duration time.Duration
}

// LeagueFileName is the per-league output name. The league display name is
// used verbatim.
func LeagueFileName(league string) string {
	return league + ".csv"
}

// Save writes the combined dataset to combined_matches.csv, then one file
// per league. Every run fully replaces previous outputs.
func Save(log zerolog.Logger, outDir string, matches []model.Match, m *metrics.Run) (*SaveResult, error) {
	start := time.Now()

	combinedPath := filepath.Join(outDir, config.CombinedFileName)
	combined, err := csvio.WriteFile(combinedPath, matches)
	if err != nil {
		return nil, fmt.Errorf("write combined: %w", err)
	}
	m.FilesWritten.Inc()
	files := []model.WrittenFile{combined}
	log.Info().
		Str("path", combined.Path).
		Int("rows", combined.Rows).
		Str("sha256", combined.SHA256).
		Msg("combined file written")

	for _, part := range PartitionByLeague(matches) {
		wf, err := csvio.WriteFile(filepath.Join(outDir, LeagueFileName(part.League)), part.Matches)
		if err != nil {
			return nil, fmt.Errorf("write league %q: %w", part.League, err)
		}
		wf.League = part.League
		m.FilesWritten.Inc()
		files = append(files, wf)
		log.Debug().
			Str("league", part.League).
			Str("path", wf.Path).
			Int("rows", wf.Rows).
			Msg("league file written")
	}

	dur := time.Since(start)
	log.Info().
		Int("files", len(files)).
		Dur("duration", dur).
		Msg("save complete")

	return &SaveResult{Files: files, Duration: dur}, nil
}
