package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/icconsult/customer-service/internal/api/http/handlers"
	"github.com/icconsult/customer-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Customers      *handlers.CustomersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	v1 := app.Group("/api/v1", cfg.AuthMiddleware.Handle)
	v1.Get("/customer/:id", cfg.Customers.Get)
	v1.Put("/customer/:id", cfg.Customers.Put)
}
