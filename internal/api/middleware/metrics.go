package middleware

import (
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status_code", "media_type"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status_code", "media_type"})
)

func MetricsMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				duration := time.Since(start)
				statusCode := http.StatusText(ww.Status())
				routePattern := chi.RouteContext(r.Context()).RoutePattern()
				mediaType := responseMediaType(ww.Header().Get("Content-Type"))

				httpRequestsTotal.WithLabelValues(r.Method, routePattern, statusCode, mediaType).Inc()
				httpRequestDuration.WithLabelValues(r.Method, routePattern, statusCode, mediaType).Observe(duration.Seconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func responseMediaType(contentType string) string {
	if contentType == "" {
		return "none"
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "invalid"
	}
	return mt
}
