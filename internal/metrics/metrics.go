package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Run holds the counters for one scrape run. Each Run owns its registry so
// repeated runs in one process (and tests) never share state.
type Run struct {
	Registry *prometheus.Registry

	Fetches      *prometheus.CounterVec
	RowsFetched  prometheus.Counter
	LinesSkipped prometheus.Counter
	RowsDropped  prometheus.Counter
	RowsKept     prometheus.Counter
	FilesWritten prometheus.Counter
	PhaseSeconds *prometheus.GaugeVec
	LastSuccess  prometheus.Gauge
}

// NewRun creates and registers the run collectors.
func NewRun() *Run {
	r := &Run{
		Registry: prometheus.NewRegistry(),
		Fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "footstats_fetches_total",
				Help: "Catalog entries fetched, by outcome (ok or failure kind)",
			},
			[]string{"outcome"},
		),
		RowsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footstats_rows_fetched_total",
			Help: "Raw match rows parsed from the feed",
		}),
		LinesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footstats_lines_skipped_total",
			Help: "Malformed feed lines skipped by the parser",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footstats_rows_dropped_total",
			Help: "Rows dropped during cleaning for a missing field",
		}),
		RowsKept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footstats_rows_kept_total",
			Help: "Rows in the combined dataset",
		}),
		FilesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footstats_files_written_total",
			Help: "CSV files written (combined and per league)",
		}),
		PhaseSeconds: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "footstats_phase_duration_seconds",
				Help: "Duration of each pipeline phase in the last run",
			},
			[]string{"phase"},
		),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "footstats_last_success_timestamp_seconds",
			Help: "Unix time at which the last successful run completed",
		}),
	}
	r.Registry.MustRegister(
		r.Fetches, r.RowsFetched, r.LinesSkipped, r.RowsDropped,
		r.RowsKept, r.FilesWritten, r.PhaseSeconds, r.LastSuccess,
	)
	return r
}

// WriteTextfile writes the current values in the node_exporter textfile format.
func (r *Run) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}
