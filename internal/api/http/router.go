package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/riskzero/supplier-registry/internal/api/http/handlers"
	"github.com/riskzero/supplier-registry/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Suppliers      *handlers.SupplierHandler
	Countries      *handlers.CountryHandler
	Screening      *handlers.ScreeningHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/country", cfg.Countries.List)

	protected.Get("/supplier", cfg.Suppliers.List)
	protected.Post("/supplier", cfg.Suppliers.Create)
	protected.Get("/supplier/:taxId", cfg.Suppliers.Get)
	protected.Put("/supplier/:taxId", cfg.Suppliers.Update)
	protected.Delete("/supplier/:taxId", cfg.Suppliers.Delete)
	protected.Get("/supplier/:taxId/screening", cfg.Screening.Screen)
}
