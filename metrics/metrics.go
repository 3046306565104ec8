package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AreaConsistent is 1 while the last run for an area found the daemon and
	// the store in agreement, 0 otherwise.
	AreaConsistent = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "topodiff_area_consistent",
			Help: "Whether the last validation run found the area consistent (1) or divergent (0)",
		},
		[]string{"area"},
	)

	// DiffEntries tracks the size of each report partition from the last run.
	DiffEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "topodiff_diff_entries",
			Help: "Number of diff entries in the last validation run, per partition",
		},
		[]string{"area", "entity", "kind"},
	)

	ValidationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topodiff_validation_runs_total",
			Help: "Total validation runs, labeled by outcome",
		},
		[]string{"area", "result"},
	)

	ValidationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "topodiff_validation_duration_seconds",
			Help:    "Duration of one validation run including fetches",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	FetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topodiff_fetch_errors_total",
			Help: "Total snapshot fetch failures",
		},
		[]string{"area"},
	)
)
