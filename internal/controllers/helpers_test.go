package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"portfolio/internal/repository"
	"portfolio/internal/testutil"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type env struct {
	repo    *repository.Repository
	backend *testutil.MemoryBackend
	cache   *testutil.MockCache
	logger  *testutil.MockLogger
	clock   *testutil.MockClock
}

func newEnv(t *testing.T) *env {
	t.Helper()
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	backend, store, _ := testutil.NewStores(logger, metrics)
	clock := testutil.NewMockClock(testNow)
	return &env{
		repo:    repository.NewRepository(store, clock, logger, metrics),
		backend: backend,
		cache:   testutil.NewMockCache(),
		logger:  logger,
		clock:   clock,
	}
}

// call runs h with an optional JSON body and mux vars.
func call(h http.HandlerFunc, method, target string, body any, vars map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, target, &buf)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func id(v string) map[string]string {
	return map[string]string{"id": v}
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
