// Package metrics holds the Prometheus collectors for the landing-page
// pipeline. The store-failure counter is the observable channel that
// distinguishes a degraded zero snapshot from a genuinely unrated page.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AggregateStoreFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aggregate_store_failures_total",
		Help: "Number of rating/review store queries that failed and degraded to a zero snapshot.",
	})

	PageCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "page_cache_hits_total",
		Help: "Number of landing-page requests served from the response cache.",
	})

	PageCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "page_cache_misses_total",
		Help: "Number of landing-page requests that required a fresh render.",
	})

	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "page_render_duration_seconds",
		Help:    "Time spent aggregating and assembling the landing page on a cache miss.",
		Buckets: prometheus.DefBuckets,
	})
)
