package handler

import (
	"errors"

	"innosphere/internal/delivery/http/dto"
	"innosphere/internal/delivery/http/middleware"
	"innosphere/internal/domain/rating"
	"innosphere/internal/pkg/response"
	"innosphere/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RatingsHandler struct {
	ratings usecase.RatingUsecase
}

func NewRatingsHandler(ratings usecase.RatingUsecase) *RatingsHandler {
	return &RatingsHandler{ratings: ratings}
}

func (h *RatingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/rating-criteria", h.ListCriteria)
	r.Post("/ratings", h.Submit)
}

func (h *RatingsHandler) ListCriteria(c fiber.Ctx) error {
	criteria, err := h.ratings.ListCriteria(c.Context())
	if err != nil {
		return mapRatingUsecaseError(err)
	}

	out := make([]dto.RatingCriteriaResponse, 0, len(criteria))
	for _, cr := range criteria {
		out = append(out, dto.RatingCriteriaResponse{ID: cr.ID, Name: cr.Name})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *RatingsHandler) Submit(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.SubmitRatingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	details := make([]rating.Detail, 0, len(req.Details))
	for _, d := range req.Details {
		details = append(details, rating.Detail{CriteriaID: d.RatingCriteriaID, Score: d.Score})
	}

	err := h.ratings.SubmitRating(c.Context(), workerID, usecase.SubmitRatingInput{
		JobApplicationID: req.JobApplicationID,
		Comment:          req.Comment,
		Scores:           details,
	})
	if err != nil {
		return mapRatingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Rating submitted", nil)
}

func mapRatingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid rating submission", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrNotRatable):
		return middleware.NewAppError(fiber.StatusConflict, "Application cannot be rated", nil, err)
	case errors.Is(err, usecase.ErrAlreadyRated):
		return middleware.NewAppError(fiber.StatusConflict, "Application already rated", nil, err)
	case errors.Is(err, usecase.ErrActionInFlight):
		return middleware.NewAppError(fiber.StatusConflict, "Rating already in progress", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
