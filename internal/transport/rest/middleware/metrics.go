package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"lifetrack/internal/telemetry"
)

// Metrics records per-route request counts and latency
func Metrics() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}
			telemetry.HTTPRequestsTotal.WithLabelValues(path, r.Method, strconv.Itoa(rec.status)).Inc()
			telemetry.HTTPRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
		})
	}
}
