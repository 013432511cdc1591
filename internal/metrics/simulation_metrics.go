package metrics

import "github.com/prometheus/client_golang/prometheus"

// Counter metrics
var (
	RunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "galton",
		Name:      "runs_total",
		Help:      "Total number of simulation runs by status",
	}, []string{"status"})
	MountainsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "galton",
		Name:      "mountains_total",
		Help:      "Total number of bin distributions computed",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "galton",
		Name:      "cache_hits_total",
		Help:      "Binomial coefficient cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "galton",
		Name:      "cache_misses_total",
		Help:      "Binomial coefficient cache misses",
	})
)

// Histogram metrics
var (
	RoundingDrift = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "galton",
		Name:      "rounding_drift_balls",
		Help:      "Placed balls minus requested balls per distribution",
		Buckets:   []float64{-5, -3, -2, -1, 0, 1, 2, 3, 5},
	})
	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "galton",
		Name:      "run_duration_seconds",
		Help:      "Duration of simulation runs in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})
)

// Gauge metrics
var (
	LastRunBalls = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "galton",
		Name:      "last_run_balls",
		Help:      "Ball count of the most recent run",
	})
	LastRunBins = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "galton",
		Name:      "last_run_bins",
		Help:      "Bin count of the most recent run",
	})
)

// RecordRun records a finished run.
// status should be one of: "success", "invalid", "cancelled"
func RecordRun(status string, durationSeconds float64) {
	RunsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		RunDuration.Observe(durationSeconds)
	}
}

// RecordMountain records one computed distribution and its rounding drift.
func RecordMountain(drift int) {
	MountainsTotal.Inc()
	RoundingDrift.Observe(float64(drift))
}

// RecordCacheLookup records a distribution cache lookup.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHitsTotal.Inc()
		return
	}
	CacheMissesTotal.Inc()
}

// UpdateBoard sets the board size gauges.
func UpdateBoard(balls, bins int) {
	LastRunBalls.Set(float64(balls))
	LastRunBins.Set(float64(bins))
}
