package ingest

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/footstats/internal/config"
	"github.com/gyeh/footstats/internal/model"
)

// PreflightResult holds all context resolved before fetching starts.
type PreflightResult struct {
	// RunID tags every log line and the summary of this run.
	RunID uuid.UUID
	// Catalog is the ordered list of (league, season) entries to fetch.
	Catalog []model.CatalogEntry
	// OutDir exists and is a directory once Preflight returns.
	OutDir string
}

// Preflight builds the catalog and makes sure the output directory exists.
func Preflight(log zerolog.Logger, cfg *config.Config) (*PreflightResult, error) {
	start := time.Now()

	catalog := cfg.Catalog()
	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	stat, err := os.Stat(cfg.OutDir)
	if err != nil {
		return nil, fmt.Errorf("stat output dir: %w", err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("output path %s is not a directory", cfg.OutDir)
	}

	runID := uuid.New()
	log.Info().
		Str("run_id", runID.String()).
		Int("entries", len(catalog)).
		Int("leagues", len(cfg.Leagues)).
		Int("seasons", len(cfg.Seasons)).
		Str("out_dir", cfg.OutDir).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return &PreflightResult{
		RunID:   runID,
		Catalog: catalog,
		OutDir:  cfg.OutDir,
	}, nil
}
