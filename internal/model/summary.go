package model

import "time"

// SkippedEntry records a catalog entry that produced no row-set.
type SkippedEntry struct {
	Entry  CatalogEntry
	Kind   string
	Reason string
}

// WrittenFile describes one persisted CSV.
type WrittenFile struct {
	Path   string
	League string // empty for the combined file
	Rows   int
	SHA256 string
}

// RunSummary captures metrics from a single scrape run.
type RunSummary struct {
	RunID            string
	EntriesAttempted int
	EntriesFetched   int
	Skipped          []SkippedEntry
	RowsFetched      int64
	LinesSkipped     int64
	RowsDropped      int64
	RowsKept         int64
	Files            []WrittenFile
	DurationScrape   time.Duration
	DurationClean    time.Duration
	DurationSave     time.Duration
	DurationTotal    time.Duration
}

// SkippedByKind counts skipped entries per failure kind.
func (s *RunSummary) SkippedByKind() map[string]int {
	out := make(map[string]int)
	for _, sk := range s.Skipped {
		out[sk.Kind]++
	}
	return out
}
