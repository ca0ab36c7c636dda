package graph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// buildRecords counts records created by Build.
	buildRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "magn_build_records_total",
		Help: "Total records created by graph assembly",
	})

	// buildElements counts distinct value elements created by Build.
	buildElements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "magn_build_elements_total",
		Help: "Total value elements created by graph assembly",
	})

	// searchPaths tracks paths returned per search.
	searchPaths = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "magn_search_paths",
		Help:    "Paths returned per breadth-first search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048
	})

	// fitRows counts row updates applied by Fit, across epochs.
	fitRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "magn_fit_rows_total",
		Help: "Total training row updates",
	})

	// fitDuration tracks Fit latency.
	fitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "magn_fit_duration_seconds",
		Help:    "Fit duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	})

	// predictTotal counts predictions by result.
	predictTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "magn_predict_total",
		Help: "Total predictions by result",
	}, []string{"result"}) // ok, no_path, lookup, error

	// predictDuration tracks single prediction latency.
	predictDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "magn_predict_duration_seconds",
		Help:    "Prediction duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	})
)
