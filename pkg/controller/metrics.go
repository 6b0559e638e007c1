package controller

import (
	"linkaudit/pkg/metrics"
	"net/http"
	"time"
)

// WithMetrics records every request served by mux, labelled with the mux
// pattern that matched it. It must wrap the mux directly so the pattern set
// on the request is visible after serving.
func WithMetrics(m *metrics.HTTP, mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		mux.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.Record(r.Context(), r.Method, route, rec.status, time.Since(start))
	})
}
