package api

import (
	"customer-catalog/internal/api/codec"
	"customer-catalog/internal/api/handler"
	mw "customer-catalog/internal/api/middleware"
	"customer-catalog/internal/config"
	"customer-catalog/internal/domain/customer"
	"log/slog"
	"net/http"
	"time"

	_ "customer-catalog/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// SetupRouter wires the HTTP surface. The returned rate limiter must be
// closed on shutdown.
func SetupRouter(catalogService customer.CatalogService, codecs *codec.Registry, cfg *config.Config, logger *slog.Logger) (*chi.Mux, *mw.RateLimiterMiddleware) {
	router := chi.NewRouter()

	limiter := setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupCustomerRoutes(router, catalogService, codecs, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router, limiter
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) *mw.RateLimiterMiddleware {
	limiter := mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "application/x-protobuf", "application/protobuf"))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(limiter.Middleware)
	router.Use(mw.MetricsMiddleware())
	return limiter
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupCustomerRoutes(r chi.Router, svc customer.CatalogService, codecs *codec.Registry, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc, codecs, logger)

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.ListCustomers)
		r.Get("/{id}", h.GetCustomer)
	})
}
