package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Document store metrics
	StoreOperations *prometheus.CounterVec
	StoreLatency    *prometheus.HistogramVec

	// Catalog metrics
	CatalogMutations *prometheus.CounterVec
	CatalogCacheHits prometheus.Counter
	CatalogCacheMiss prometheus.Counter
	LoginAttempts    *prometheus.CounterVec
}

// NewMetrics creates all application metrics and registers them with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StoreOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of document store operations",
		}, []string{"operation", "collection", "status"}),
		StoreLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of document store operations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "collection"}),
		CatalogMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_mutations_total",
			Help:      "Total number of catalog create/update operations",
		}, []string{"operation", "status"}),
		CatalogCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_hits_total",
			Help:      "Total number of catalog list cache hits",
		}),
		CatalogCacheMiss: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_misses_total",
			Help:      "Total number of catalog list cache misses",
		}),
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Total number of login attempts",
		}, []string{"result"}),
	}
}
