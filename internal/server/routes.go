package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"platewatch/internal/db"
	"platewatch/internal/handlers"
	"platewatch/internal/storage"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB, store *storage.Store) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(database)
	updateHandler := handlers.NewUpdateHandler(database, store)
	claimHandler := handlers.NewClaimHandler(database, store)
	restaurantHandler := handlers.NewRestaurantHandler(database)
	probeHandler := handlers.NewProbeHandler(database)

	// Entry document
	s.App.Get("/", func(c fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"SiteTitle": s.Cfg.SiteTitle,
		})
	})

	// Account routes
	s.App.Post("/api/register", authHandler.Register)
	s.App.Post("/api/login", authHandler.Login)
	s.App.Post("/api/make-admin", authHandler.MakeAdmin)

	// Price update routes
	s.App.Post("/api/updates/submit", updateHandler.Submit)
	s.App.Get("/api/updates/pending", updateHandler.ListPending)
	s.App.Post("/api/updates/approve/:id", updateHandler.Approve)
	s.App.Post("/api/updates/reject/:id", updateHandler.Reject)

	// Claim request routes
	s.App.Post("/api/claim/submit", claimHandler.Submit)
	s.App.Get("/api/claim/pending", claimHandler.ListPending)

	// Restaurant listing
	s.App.Get("/api/restaurants", restaurantHandler.List)

	// Uploaded images. The static middleware rejects path traversal and
	// returns 404 for absent files.
	s.App.Get("/uploads/*", static.New(store.Root()))

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
