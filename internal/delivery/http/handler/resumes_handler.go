package handler

import (
	"errors"
	"mime/multipart"

	"innosphere/internal/delivery/http/dto"
	"innosphere/internal/delivery/http/middleware"
	"innosphere/internal/domain/profile"
	"innosphere/internal/pkg/response"
	"innosphere/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ResumesHandler struct {
	resumes usecase.ResumeUsecase
}

func NewResumesHandler(resumes usecase.ResumeUsecase) *ResumesHandler {
	return &ResumesHandler{resumes: resumes}
}

func (h *ResumesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	g := r.Group("/me/resumes")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Delete("/:id", h.Delete)
}

func (h *ResumesHandler) List(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	resumes, err := h.resumes.ListResumes(c.Context(), workerID)
	if err != nil {
		return mapResumeUsecaseError(err)
	}

	out := make([]dto.ResumeResponse, 0, len(resumes))
	for _, res := range resumes {
		out = append(out, toResumeResponse(res))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ResumesHandler) Create(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	}

	file, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot read resume file", nil, err)
	}
	defer file.Close()

	res, err := h.resumes.CreateResume(c.Context(), workerID, usecase.CreateResumeInput{
		Title:       c.FormValue("title"),
		FileName:    fh.Filename,
		ContentType: formContentType(fh),
		Size:        fh.Size,
		File:        file,
	})
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Resume uploaded", toResumeResponse(res))
}

func (h *ResumesHandler) Delete(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.resumes.DeleteResume(c.Context(), workerID, id); err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func formContentType(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}
	return fh.Header.Get("Content-Type")
}

func toResumeResponse(res profile.Resume) dto.ResumeResponse {
	return dto.ResumeResponse{
		ID:        res.ID,
		Title:     res.Title,
		FileURL:   res.FileURL,
		CreatedAt: formatTime(res.CreatedAt),
	}
}

func mapResumeUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume upload", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
