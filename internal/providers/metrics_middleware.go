package providers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// endpointLabel prefers the matched route template so that /api/projects/1
// and /api/projects/2 share a series.
func endpointLabel(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

func MetricsMiddleware(metrics MetricsProviderInterface, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		endpoint := endpointLabel(r)
		metrics.IncRequestsTotal(endpoint, sw.status)
		metrics.ObserveRequestDuration(endpoint, duration)
	})
}

// LatencyMiddleware delays every response by d. The delay is cosmetic and
// gives way to request cancellation.
func LatencyMiddleware(d time.Duration, next http.Handler) http.Handler {
	if d <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-r.Context().Done():
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AccessLogMiddleware writes one debug line per request to the get or post
// log, and a warning for server errors.
func AccessLogMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		t := GetLogTypeByRequestType(r.Method)
		if sw.status >= http.StatusInternalServerError {
			logger.Warnf(t, "%s %s -> %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start))
			return
		}
		logger.Debugf(t, "%s %s -> %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}
