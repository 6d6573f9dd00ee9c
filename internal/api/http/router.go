package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interaction-service/internal/api/http/handlers"
	"github.com/spec-kit/interaction-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Interactions *handlers.InteractionsHandler
	Staff        *handlers.StaffHandler
	Catalog      *handlers.CatalogHandler
	SessionGate  *auth.SessionGate
	StaticDir    string
}

// RegisterRoutes wires HTTP routes. The session gate runs ahead of every
// route but lets API and health paths through ungated.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.SessionGate.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth", cfg.Auth.Login)
	api.Delete("/auth", cfg.Auth.Logout)

	api.Get("/interactions", cfg.Interactions.List)
	api.Post("/interactions", cfg.Interactions.Create)
	// stats must register ahead of :id
	api.Get("/interactions/stats", cfg.Interactions.Stats)
	api.Get("/interactions/:id", cfg.Interactions.Get)
	api.Put("/interactions/:id", cfg.Interactions.Update)
	api.Delete("/interactions/:id", cfg.Interactions.Delete)

	api.Get("/rsos", cfg.Staff.List)
	api.Post("/rsos", cfg.Staff.Create)
	api.Get("/rsos/:id", cfg.Staff.Get)
	api.Put("/rsos/:id", cfg.Staff.Update)
	api.Delete("/rsos/:id", cfg.Staff.Delete)

	api.Get("/tags", cfg.Catalog.ListTags)
	api.Post("/seed", cfg.Catalog.Seed)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
}
