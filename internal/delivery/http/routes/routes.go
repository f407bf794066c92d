package routes

import (
	"innosphere/internal/delivery/http/handler"
	"innosphere/internal/delivery/http/middleware"
	v1 "innosphere/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health   *handler.HealthHandler
	Handlers v1.Handlers
	AuthMw   *middleware.AuthMiddleware
	Events   fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if r == nil || app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.Events != nil {
		app.Get("/ws/events", r.Events)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.Handlers, r.AuthMw)
}
