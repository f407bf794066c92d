package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"innosphere/internal/domain/profile"
	"innosphere/internal/infrastructure/backend"
	"innosphere/internal/infrastructure/storage"

	"github.com/google/uuid"
)

type CreateResumeInput struct {
	Title       string
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

type ResumeUsecase interface {
	ListResumes(ctx context.Context, workerID uuid.UUID) ([]profile.Resume, error)
	CreateResume(ctx context.Context, workerID uuid.UUID, in CreateResumeInput) (profile.Resume, error)
	DeleteResume(ctx context.Context, workerID uuid.UUID, resumeID int64) error
}

type Resume struct {
	api    backend.ResumeAPI
	files  storage.Client
	logger *log.Logger
}

func NewResumeUsecase(api backend.ResumeAPI, files storage.Client, logger *log.Logger) *Resume {
	return &Resume{api: api, files: files, logger: logger}
}

func (u *Resume) ListResumes(ctx context.Context, workerID uuid.UUID) ([]profile.Resume, error) {
	resumes, err := u.api.ListResumes(ctx, workerID)
	if err != nil {
		return nil, ErrInternal
	}
	return resumes, nil
}

// CreateResume validates title and file, uploads the document and writes the
// durable URL to the core API. A rejected file never reaches the store.
func (u *Resume) CreateResume(ctx context.Context, workerID uuid.UUID, in CreateResumeInput) (profile.Resume, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return profile.Resume{}, ErrInvalidInput
	}
	if u.files == nil {
		return profile.Resume{}, ErrInternal
	}

	upload := storage.UploadInput{
		FileName:    in.FileName,
		ContentType: in.ContentType,
		Size:        in.Size,
		Kind:        storage.KindDocument,
		Body:        in.File,
	}
	if err := storage.Validate(upload); err != nil {
		return profile.Resume{}, errors.Join(ErrInvalidInput, err)
	}

	url, err := u.files.Upload(ctx, upload)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Resumes] upload failed worker=%s file=%s err=%v", workerID, in.FileName, err)
		}
		return profile.Resume{}, ErrInternal
	}

	created, err := u.api.CreateResume(ctx, profile.Resume{WorkerID: workerID, Title: title, FileURL: url})
	if err != nil {
		return profile.Resume{}, mapBackendError(err)
	}
	return created, nil
}

func (u *Resume) DeleteResume(ctx context.Context, workerID uuid.UUID, resumeID int64) error {
	if resumeID == 0 {
		return ErrInvalidInput
	}
	if err := u.api.DeleteResume(ctx, workerID, resumeID); err != nil {
		return mapBackendError(err)
	}
	return nil
}
