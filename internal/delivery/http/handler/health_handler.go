package handler

import (
	"context"
	"time"

	"innosphere/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	required map[string]Pinger
	optional map[string]Pinger
}

// NewHealthHandler probes named dependencies. A required dependency that
// fails its ping turns the check into a 503; optional ones (the fail-open
// Redis cache) are reported but never gate the status.
func NewHealthHandler(required, optional map[string]Pinger) *HealthHandler {
	return &HealthHandler{required: required, optional: optional}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.required)+len(h.optional))
	healthy := true
	for name, dep := range h.required {
		if probe(ctx, dep, checks, name) != nil {
			healthy = false
		}
	}
	for name, dep := range h.optional {
		_ = probe(ctx, dep, checks, name)
	}

	status := fiber.StatusOK
	if !healthy {
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, "", fiber.Map{"checks": checks})
}

func probe(ctx context.Context, dep Pinger, checks map[string]string, name string) error {
	if dep == nil {
		checks[name] = "disabled"
		return nil
	}
	if err := dep.Ping(ctx); err != nil {
		checks[name] = "down"
		return err
	}
	checks[name] = "up"
	return nil
}
