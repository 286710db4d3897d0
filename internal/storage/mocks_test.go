package storage

import (
	"errors"
	"portfolio/internal/providers"
	"time"
)

type testLogger struct{ warnings int }

func (m *testLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  { m.warnings++ }
func (m *testLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *testLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Close()                                                  {}

type testMetrics struct{ failures map[string]int }

func newTestMetrics() *testMetrics { return &testMetrics{failures: map[string]int{}} }

func (m *testMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *testMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *testMetrics) IncCacheHits()                                    {}
func (m *testMetrics) IncCacheMisses()                                  {}
func (m *testMetrics) IncCacheInvalidations()                           {}
func (m *testMetrics) ObserveBackupDuration(_ time.Duration)            {}
func (m *testMetrics) IncLoginAttempts(_ string)                        {}
func (m *testMetrics) IncLockouts()                                     {}
func (m *testMetrics) IncStorageFailures(op string)                     { m.failures[op]++ }
func (m *testMetrics) SetCollectionSize(_ string, _ int)                {}

var errQuota = errors.New("quota exceeded")

// quotaBackend wraps a real backend and can refuse writes.
type quotaBackend struct {
	Backend
	full bool
}

func (q *quotaBackend) Put(key string, value []byte) error {
	if q.full {
		return errQuota
	}
	return q.Backend.Put(key, value)
}
