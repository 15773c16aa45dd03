package grid

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const kindLabel = "kind"

var (
	gridQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grid_queries_total",
		Help: "The number of spatial index queries.",
	}, []string{
		kindLabel,
	})

	gridQueryCandidates = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "grid_query_candidates",
		Help:    "The number of points tested by a spatial index query.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{
		kindLabel,
	})

	gridQueryMatches = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "grid_query_matches",
		Help:    "The number of points returned by a spatial index query.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{
		kindLabel,
	})
)

func instrumentQuery(kind string, candidates, matches int) {
	labels := prometheus.Labels{kindLabel: kind}
	gridQueries.With(labels).Inc()
	gridQueryCandidates.With(labels).Observe(float64(candidates))
	gridQueryMatches.With(labels).Observe(float64(matches))
}
