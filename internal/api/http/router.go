package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shiftswap-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Swaps  *handlers.SwapsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	v1 := app.Group("/api/v1")
	v1.Post("/swaps/request", cfg.Swaps.RequestSwap)
	v1.Get("/swaps/:id", cfg.Swaps.GetSwap)
}
