package app

import (
	"context"
	"fmt"
	"strings"

	"innosphere/internal/config"
	"innosphere/internal/delivery/http/handler"
	"innosphere/internal/delivery/http/middleware"
	"innosphere/internal/delivery/http/routes"
	v1 "innosphere/internal/delivery/http/routes/v1"
	"innosphere/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	accessLog := middleware.NewAccessLogMiddleware(c.Logger)
	errMw := middleware.NewErrorMiddleware()
	f.Use(accessLog.Middleware())
	f.Use(errMw.Middleware())

	registry := buildRegistry(c)
	registry.Register(f)

	go c.Hub.Run()

	cleanup := func() error {
		return c.Close()
	}
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func buildRegistry(c *Container) *routes.Registry {
	authMw := middleware.NewAuthMiddleware(c.JWT)
	wsHandler := ws.NewHandler(c.Hub, c.Logger)

	required := map[string]handler.Pinger{}
	if c.DB != nil {
		required["postgres"] = c.DB
	}
	optional := map[string]handler.Pinger{
		"redis": c.Cache,
	}

	return &routes.Registry{
		Health: handler.NewHealthHandler(required, optional),
		Handlers: v1.Handlers{
			Auth:         handler.NewAuthHandler(c.Auth),
			Applications: handler.NewApplicationsHandler(c.Applications, c.Actions),
			Ratings:      handler.NewRatingsHandler(c.Ratings),
			Resumes:      handler.NewResumesHandler(c.Resumes),
			Profile:      handler.NewProfileHandler(c.Profiles),
		},
		AuthMw: authMw,
		Events: wsHandler.HandleEventsWS,
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.Fiber == nil {
		return nil
	}
	return a.Fiber.ShutdownWithContext(ctx)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
