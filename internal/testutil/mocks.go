package testutil

import (
	"portfolio/internal/providers"
	"portfolio/internal/storage"
	"sort"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockClock is a manually advanced providers.Clock.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(now time.Time) *MockClock {
	return &MockClock{now: now}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// MemoryBackend implements storage.Backend in memory. FailPut/FailGet make
// the corresponding operation fail, to simulate a full or broken store.
type MemoryBackend struct {
	mu      sync.Mutex
	Data    map[string][]byte
	FailPut error
	FailGet error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{Data: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		return nil, m.FailGet
	}
	v, ok := m.Data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryBackend) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPut != nil {
		return m.FailPut
	}
	out := make([]byte, len(value))
	copy(out, value)
	m.Data[key] = out
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
	return nil
}

func (m *MemoryBackend) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	return nil
}

func (m *MemoryBackend) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.Data))
	for k := range m.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryBackend) Close() error { return nil }

// Raw returns the stored bytes for key, bypassing any codec.
func (m *MemoryBackend) Raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu              sync.Mutex
	Requests        int
	CacheHits       int
	CacheMisses     int
	CacheClears     int
	Backups         int
	LoginAttempts   map[string]int
	Lockouts        int
	StorageFailures map[string]int
	Collections     map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		LoginAttempts:   make(map[string]int),
		StorageFailures: make(map[string]int),
		Collections:     make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncCacheInvalidations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheClears++
}

func (m *MockMetrics) ObserveBackupDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Backups++
}

func (m *MockMetrics) IncLoginAttempts(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoginAttempts[result]++
}

func (m *MockMetrics) IncLockouts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lockouts++
}

func (m *MockMetrics) IncStorageFailures(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StorageFailures[op]++
}

func (m *MockMetrics) SetCollectionSize(collection string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Collections[collection] = count
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu     sync.Mutex
	Data   map[string][]byte
	Clears int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.Clears++
}

func (m *MockCache) Len() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Data))
}

// MockCompressor implements backup.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// NewStores builds a content and an auth store over one shared memory backend.
func NewStores(logger providers.Logger, metrics providers.MetricsProviderInterface) (*MemoryBackend, storage.ContentStore, storage.AuthStore) {
	backend := NewMemoryBackend()
	return backend,
		storage.NewContentStoreProvider(backend, logger, metrics),
		storage.NewAuthStoreProvider(backend, logger, metrics)
}
