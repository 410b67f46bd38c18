package ingest

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Cleanup removes temporary files left in outDir by an interrupted save.
func Cleanup(log zerolog.Logger, outDir string) error {
	start := time.Now()

	leftovers, err := filepath.Glob(filepath.Join(outDir, ".*.csv.*.tmp"))
	if err != nil {
		return err
	}
	removed := 0
	for _, path := range leftovers {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		removed++
	}

	if removed > 0 {
		log.Info().
			Int("files_removed", removed).
			Dur("duration", time.Since(start)).
			Msg("temp file cleanup complete")
	}
	return nil
}
