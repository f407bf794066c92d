package v1

import (
	"innosphere/internal/delivery/http/handler"
	"innosphere/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Applications *handler.ApplicationsHandler
	Ratings      *handler.RatingsHandler
	Resumes      *handler.ResumesHandler
	Profile      *handler.ProfileHandler
}

func Register(r fiber.Router, h Handlers, authMw *middleware.AuthMiddleware) {
	if r == nil || authMw == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterPublicRoutes(r)
	}

	protected := r.Group("", authMw.Middleware())

	if h.Auth != nil {
		h.Auth.RegisterProtectedRoutes(protected)
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(protected)
	}
	if h.Ratings != nil {
		h.Ratings.RegisterRoutes(protected)
	}
	if h.Resumes != nil {
		h.Resumes.RegisterRoutes(protected)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(protected)
	}
}
