package providers

import "time"

// local mocks to avoid an import cycle with testutil

type testLogger struct{}

func (m *testLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *testLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *testLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Close()                                        {}

type mockMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            int
	misses          int
	clears          int
}

func (m *mockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *mockMetrics) IncCacheHits()                                    { m.hits++ }
func (m *mockMetrics) IncCacheMisses()                                  { m.misses++ }
func (m *mockMetrics) IncCacheInvalidations()                           { m.clears++ }
func (m *mockMetrics) ObserveBackupDuration(_ time.Duration)            {}
func (m *mockMetrics) IncLoginAttempts(_ string)                        {}
func (m *mockMetrics) IncLockouts()                                     {}
func (m *mockMetrics) IncStorageFailures(_ string)                      {}
func (m *mockMetrics) SetCollectionSize(_ string, _ int)                {}

type logLine struct {
	level string
	t     TypeEnum
}

// recordingLogger keeps the level and channel of every line.
type recordingLogger struct {
	lines []logLine
}

func (m *recordingLogger) Errorf(t TypeEnum, _ string, _ ...interface{}) {
	m.lines = append(m.lines, logLine{"error", t})
}
func (m *recordingLogger) Warnf(t TypeEnum, _ string, _ ...interface{}) {
	m.lines = append(m.lines, logLine{"warn", t})
}
func (m *recordingLogger) Debugf(t TypeEnum, _ string, _ ...interface{}) {
	m.lines = append(m.lines, logLine{"debug", t})
}
func (m *recordingLogger) Infof(t TypeEnum, _ string, _ ...interface{}) {
	m.lines = append(m.lines, logLine{"info", t})
}
func (m *recordingLogger) Fatalf(t TypeEnum, _ string, _ ...interface{}) {
	m.lines = append(m.lines, logLine{"fatal", t})
}
func (m *recordingLogger) Close() {}
