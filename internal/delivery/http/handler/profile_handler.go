package handler

import (
	"errors"

	"innosphere/internal/delivery/http/dto"
	"innosphere/internal/delivery/http/middleware"
	"innosphere/internal/domain/profile"
	"innosphere/internal/pkg/response"
	"innosphere/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profiles usecase.ProfileUsecase
}

func NewProfileHandler(profiles usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	g := r.Group("/me/profile")
	g.Get("/", h.Get)
	g.Put("/", h.Update)
	g.Post("/avatar", h.UploadAvatar)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.profiles.GetProfile(c.Context(), workerID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toProfileResponse(p))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.profiles.UpdateProfile(c.Context(), workerID, usecase.UpdateProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		CityName: req.CityName,
		Bio:      req.Bio,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", toProfileResponse(p))
}

func (h *ProfileHandler) UploadAvatar(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Avatar file is required", nil, err)
	}

	file, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot read avatar file", nil, err)
	}
	defer file.Close()

	url, err := h.profiles.UploadAvatar(c.Context(), workerID, usecase.UploadAvatarInput{
		FileName:    fh.Filename,
		ContentType: formContentType(fh),
		Size:        fh.Size,
		File:        file,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Avatar updated", fiber.Map{"avatar_url": url})
}

func toProfileResponse(p profile.WorkerProfile) dto.WorkerProfileResponse {
	return dto.WorkerProfileResponse{
		WorkerID:  p.WorkerID.String(),
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		CityName:  p.CityName,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile data", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
