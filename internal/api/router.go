package api

import (
	"commute-monitor/internal/api/handlers"
	"commute-monitor/internal/metrics"
	"commute-monitor/internal/ports"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter wires the read-side handlers with their dependencies and
// returns an http.Handler. Handlers stay unaware of concrete stores.
func NewRouter(reader ports.SampleReader, local *time.Location, reg *metrics.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(MetricsMiddleware(reg))
	r.Use(RateLimitMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	routesHandler := handlers.NewRoutesHandler(reader)
	samplesHandler := &handlers.SamplesHandler{Reader: reader, Local: local}

	r.Get("/health", handlers.Health)
	r.Get("/api/routes", routesHandler.List)
	r.Get("/api/samples", samplesHandler.List)

	return r
}
