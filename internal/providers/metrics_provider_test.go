package providers

import (
	"portfolio/internal/structures"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTestRegistry(t *testing.T) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	prevReg, prevGather := prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prevReg
		prometheus.DefaultGatherer = prevGather
	})
	return reg
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncCacheInvalidations()
	m.ObserveBackupDuration(time.Millisecond)
	m.IncLoginAttempts("failure")
	m.IncLockouts()
	m.IncStorageFailures("save")
	m.SetCollectionSize("projects", 3)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	useTestRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_Counters(t *testing.T) {
	useTestRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf).(*MetricsProvider)

	m.IncRequestsTotal("/api/projects", 200)
	m.IncRequestsTotal("/api/projects", 404)
	m.IncLoginAttempts("failure")
	m.IncLoginAttempts("failure")
	m.IncLockouts()
	m.IncStorageFailures("save")
	m.SetCollectionSize("projects", 4)
	m.ObserveBackupDuration(100 * time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/api/projects", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/api/projects", "4xx")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.loginAttempts.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lockouts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storageFailures.WithLabelValues("save")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.collectionsTotal.WithLabelValues("projects")))
}

func TestMetricsProvider_RegistersFamilies(t *testing.T) {
	reg := useTestRegistry(t)

	m := NewMetricsProvider(&structures.Config{Metrics: structures.MetricsConfig{Enabled: true}})
	m.IncLockouts()

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "portfolio_lockouts_total")
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{423, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
