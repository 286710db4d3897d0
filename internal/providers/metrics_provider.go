package providers

import (
	"portfolio/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncCacheInvalidations()
	ObserveBackupDuration(duration time.Duration)
	IncLoginAttempts(result string)
	IncLockouts()
	IncStorageFailures(op string)
	SetCollectionSize(collection string, count int)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	cacheClears      prometheus.Counter
	backupDuration   prometheus.Histogram
	loginAttempts    *prometheus.CounterVec
	lockouts         prometheus.Counter
	storageFailures  *prometheus.CounterVec
	collectionsTotal *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncCacheInvalidations() {
	m.cacheClears.Inc()
}

func (m *MetricsProvider) ObserveBackupDuration(duration time.Duration) {
	m.backupDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncLoginAttempts(result string) {
	m.loginAttempts.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) IncLockouts() {
	m.lockouts.Inc()
}

func (m *MetricsProvider) IncStorageFailures(op string) {
	m.storageFailures.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) SetCollectionSize(collection string, count int) {
	m.collectionsTotal.WithLabelValues(collection).Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		cacheClears: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_cache_invalidations_total",
			Help: "Times the response cache was dropped after a content write",
		}),

		backupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_backup_duration_seconds",
			Help:    "Duration of backup writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		loginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_login_attempts_total",
			Help: "Login attempts by result",
		}, []string{"result"}),

		lockouts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_lockouts_total",
			Help: "Number of times the login lockout was triggered",
		}),

		storageFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_storage_failures_total",
			Help: "Key-value store operations that failed",
		}, []string{"op"}),

		collectionsTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "portfolio_collection_records",
			Help: "Number of records per content collection",
		}, []string{"collection"}),
	}
}

// noopMetrics is used when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncCacheInvalidations()                           {}
func (n *noopMetrics) ObserveBackupDuration(_ time.Duration)            {}
func (n *noopMetrics) IncLoginAttempts(_ string)                        {}
func (n *noopMetrics) IncLockouts()                                     {}
func (n *noopMetrics) IncStorageFailures(_ string)                      {}
func (n *noopMetrics) SetCollectionSize(_ string, _ int)                {}
