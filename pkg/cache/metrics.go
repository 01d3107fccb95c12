package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type tierMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
}

var (
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pgsqlite_cache_hits_total",
			Help: "Total cache hits, by cache tier.",
		},
		[]string{"cache"},
	)
	cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pgsqlite_cache_misses_total",
			Help: "Total cache misses, by cache tier.",
		},
		[]string{"cache"},
	)
	cacheEvictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pgsqlite_cache_evictions_total",
			Help: "Total cache evictions (capacity or TTL), by cache tier.",
		},
		[]string{"cache"},
	)

	registerOnce sync.Once
)

func init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(cacheHits, cacheMisses, cacheEvictions)
	})
}

func metricsFor(name string) *tierMetrics {
	return &tierMetrics{
		hits:      cacheHits.WithLabelValues(name),
		misses:    cacheMisses.WithLabelValues(name),
		evictions: cacheEvictions.WithLabelValues(name),
	}
}
