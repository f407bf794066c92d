package usecase

import (
	"context"
	"io"
	"log"
	"strings"

	"innosphere/internal/domain/profile"
	"innosphere/internal/infrastructure/backend"
	"innosphere/internal/infrastructure/storage"

	"github.com/google/uuid"
)

type profileNotifier interface {
	NotifyProfileUpdated(workerID uuid.UUID)
}

type UpdateProfileInput struct {
	FullName string
	Phone    string
	CityName string
	Bio      string
}

type UploadAvatarInput struct {
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, workerID uuid.UUID) (profile.WorkerProfile, error)
	UpdateProfile(ctx context.Context, workerID uuid.UUID, in UpdateProfileInput) (profile.WorkerProfile, error)
	UploadAvatar(ctx context.Context, workerID uuid.UUID, in UploadAvatarInput) (string, error)
}

type Profile struct {
	api      backend.ProfileAPI
	files    storage.Client
	notifier profileNotifier
	logger   *log.Logger
}

func NewProfileUsecase(api backend.ProfileAPI, files storage.Client, notifier profileNotifier, logger *log.Logger) *Profile {
	return &Profile{api: api, files: files, notifier: notifier, logger: logger}
}

func (u *Profile) GetProfile(ctx context.Context, workerID uuid.UUID) (profile.WorkerProfile, error) {
	p, err := u.api.GetWorkerProfile(ctx, workerID)
	if err != nil {
		return profile.WorkerProfile{}, mapBackendError(err)
	}
	return p, nil
}

func (u *Profile) UpdateProfile(ctx context.Context, workerID uuid.UUID, in UpdateProfileInput) (profile.WorkerProfile, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return profile.WorkerProfile{}, ErrInvalidInput
	}

	current, err := u.api.GetWorkerProfile(ctx, workerID)
	if err != nil {
		return profile.WorkerProfile{}, mapBackendError(err)
	}

	current.FullName = strings.TrimSpace(in.FullName)
	current.Phone = strings.TrimSpace(in.Phone)
	current.CityName = strings.TrimSpace(in.CityName)
	current.Bio = strings.TrimSpace(in.Bio)

	if err := u.api.UpdateWorkerProfile(ctx, current); err != nil {
		return profile.WorkerProfile{}, mapBackendError(err)
	}

	if u.notifier != nil {
		u.notifier.NotifyProfileUpdated(workerID)
	}
	return current, nil
}

// UploadAvatar validates the image, stores it and writes the download URL to
// the profile, then publishes the refresh event.
func (u *Profile) UploadAvatar(ctx context.Context, workerID uuid.UUID, in UploadAvatarInput) (string, error) {
	if u.files == nil {
		return "", ErrInternal
	}

	upload := storage.UploadInput{
		FileName:    in.FileName,
		ContentType: in.ContentType,
		Size:        in.Size,
		Kind:        storage.KindImage,
		Body:        in.File,
	}
	if err := storage.Validate(upload); err != nil {
		return "", ErrInvalidInput
	}

	url, err := u.files.Upload(ctx, upload)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Profile] avatar upload failed worker=%s err=%v", workerID, err)
		}
		return "", ErrInternal
	}

	current, err := u.api.GetWorkerProfile(ctx, workerID)
	if err != nil {
		return "", mapBackendError(err)
	}
	current.AvatarURL = url
	if err := u.api.UpdateWorkerProfile(ctx, current); err != nil {
		return "", mapBackendError(err)
	}

	if u.notifier != nil {
		u.notifier.NotifyProfileUpdated(workerID)
	}
	return url, nil
}
