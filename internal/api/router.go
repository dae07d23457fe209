package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/joya-energy/solar-simulation-backend/internal/api/handlers"
	custommiddleware "github.com/joya-energy/solar-simulation-backend/internal/api/middleware"
	"github.com/joya-energy/solar-simulation-backend/internal/config"
	"github.com/joya-energy/solar-simulation-backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System     *service.SystemService
	Yield      *service.YieldService
	Comparison *service.ComparisonService
	Audit      *service.AuditService
	Share      *service.ShareService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/location", func(r chi.Router) {
			locationHandler := handlers.NewLocationHandler(services.Yield)
			r.Get("/", locationHandler.Locations)
			r.Get("/yield", locationHandler.Yields)
		})

		r.Route("/comparison", func(r chi.Router) {
			comparisonHandler := handlers.NewComparisonHandler(services.Comparison)
			shareHandler := handlers.NewShareHandler(services.Share, services.Comparison)

			r.Post("/", comparisonHandler.Compare)
			r.Get("/", comparisonHandler.AllComparisons)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", comparisonHandler.GetComparison)
				r.Post("/share", shareHandler.CreateShareLink)
			})
		})

		r.Route("/audit", func(r chi.Router) {
			auditHandler := handlers.NewAuditHandler(services.Audit)

			r.Post("/simulation", auditHandler.Simulate)
			r.Route("/simulation/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", auditHandler.GetSimulation)
			})

			r.Post("/energy-class", auditHandler.EnergyClass)
			r.Post("/carbon-class", auditHandler.CarbonClass)
			r.Post("/hot-water", auditHandler.HotWater)
		})

		r.Route("/share", func(r chi.Router) {
			shareHandler := handlers.NewShareHandler(services.Share, services.Comparison)
			r.Get("/{token}", shareHandler.ResolveShareLink)
		})
	})

	return r
}
