package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"innosphere/internal/delivery/http/dto"
	"innosphere/internal/delivery/http/middleware"
	"innosphere/internal/pkg/response"
	"innosphere/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationsHandler struct {
	list    usecase.ApplicationListUsecase
	actions usecase.ApplicationActionUsecase
}

func NewApplicationsHandler(list usecase.ApplicationListUsecase, actions usecase.ApplicationActionUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{list: list, actions: actions}
}

func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	me := r.Group("/me/applications")
	me.Get("/", h.List)
	me.Get("/:id", h.Get)
	me.Post("/:id/cancel", h.Cancel)

	apps := r.Group("/applications")
	apps.Post("/:id/hire", h.Hire)
	apps.Post("/:id/reject", h.Reject)
}

func (h *ApplicationsHandler) List(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	includeSeed := c.Query("include_seed") == "true"

	rows, err := h.list.ListApplications(c.Context(), workerID, usecase.ApplicationListParams{
		Limit:       limit,
		Offset:      offset,
		IncludeSeed: includeSeed,
	})
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	out := make([]dto.ApplicationRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRowResponse(row))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ApplicationsHandler) Get(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	row, err := h.list.GetApplication(c.Context(), workerID, id)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toRowResponse(row))
}

func (h *ApplicationsHandler) Cancel(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.actions.Cancel(c.Context(), workerID, id); err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ApplicationsHandler) Hire(c fiber.Ctx) error {
	return h.decide(c, h.actions.Hire)
}

func (h *ApplicationsHandler) Reject(c fiber.Ctx) error {
	return h.decide(c, h.actions.Reject)
}

func (h *ApplicationsHandler) decide(c fiber.Ctx, action func(ctx context.Context, employerID uuid.UUID, applicationID int64) error) error {
	employerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := action(c.Context(), employerID, id); err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func parseIDParam(c fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func toRowResponse(row usecase.DisplayRow) dto.ApplicationRowResponse {
	return dto.ApplicationRowResponse{
		ApplicationID: row.ApplicationID,
		CompanyName:   row.CompanyName,
		CityName:      row.CityName,
		HourlyRate:    row.HourlyRate,
		StartTime:     formatTime(row.StartTime),
		EndTime:       formatTime(row.EndTime),
		AppliedAt:     formatTime(row.AppliedAt),
		Status: dto.DisplayStatusResponse{
			Text:       row.Display.Text,
			StyleClass: row.Display.StyleClass,
			ColorToken: row.Display.ColorToken,
			Action:     string(row.Display.Action),
		},
		RatingEnabled: row.RatingEnabled,
		RatingLabel:   row.RatingLabel,
		Seed:          row.Seed,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrNotPending):
		return middleware.NewAppError(fiber.StatusConflict, "Application is no longer pending", nil, err)
	case errors.Is(err, usecase.ErrActionInFlight):
		return middleware.NewAppError(fiber.StatusConflict, "Action already in progress", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
