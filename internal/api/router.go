package api

import (
	"log/slog"
	"net/http"
	"time"

	"sensor-readings-service/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type RouterConfig struct {
	AllowedOrigins []string
	// RPS and Burst bound writes per client address.
	RPS   float64
	Burst int
}

func NewRouter(a *API, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/health", a.Health)
	r.Handle("/metrics", metrics.Handler())

	limiter := newClientLimiter(cfg.RPS, cfg.Burst)
	r.Route("/devices/{device_uuid}/readings", func(r chi.Router) {
		r.With(limiter.Middleware).Post("/", a.CreateReading)
		r.Get("/", a.ListReadings)
		r.Get("/min/", a.GetMin)
		r.Get("/max/", a.GetMax)
		r.Get("/median/", a.GetMedian)
		r.Get("/mean/", a.GetMean)
		r.Get("/mode/", a.GetMode)
		r.Get("/quartiles/", a.GetQuartiles)
		r.Get("/summary/", a.GetSummary)
	})

	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.InfoContext(r.Context(), "HTTP request",
			"method", r.Method,
			"route", metrics.RoutePattern(r),
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
