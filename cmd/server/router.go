package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/garden-api/internal/api"
	apiMiddleware "github.com/phrazzld/garden-api/internal/api/middleware"
	"github.com/phrazzld/garden-api/internal/metrics"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(app.collector.Middleware)

	gardenHandler := api.NewGardenHandler(app.gardenService, app.logger)
	healthHandler := api.NewHealthHandler(app.db)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Get("/health", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(app.registry))

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/gardens", gardenHandler.CreateGarden)
			r.Get("/gardens", gardenHandler.ListGardens)
			r.Get("/gardens/{id}", gardenHandler.GetGarden)
			r.Patch("/gardens/{id}", gardenHandler.UpdateGarden)
			r.Delete("/gardens/{id}", gardenHandler.DeleteGarden)
		})
	})

	return r
}
