package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"innosphere/internal/domain/application"
	"innosphere/internal/infrastructure/backend"

	"github.com/google/uuid"
)

type refreshNotifier interface {
	NotifyApplicationsUpdated(workerID uuid.UUID)
}

type ApplicationActionUsecase interface {
	Hire(ctx context.Context, employerID uuid.UUID, applicationID int64) error
	Reject(ctx context.Context, employerID uuid.UUID, applicationID int64) error
	Cancel(ctx context.Context, workerID uuid.UUID, applicationID int64) error
}

type ApplicationAction struct {
	api      backend.ApplicationAPI
	cache    ListCache
	notifier refreshNotifier
	logger   *log.Logger
}

func NewApplicationActionUsecase(api backend.ApplicationAPI, cache ListCache, notifier refreshNotifier, logger *log.Logger) *ApplicationAction {
	return &ApplicationAction{api: api, cache: cache, notifier: notifier, logger: logger}
}

func (u *ApplicationAction) Hire(ctx context.Context, employerID uuid.UUID, applicationID int64) error {
	return u.decide(ctx, employerID, applicationID, application.StatusAccepted, "hire")
}

func (u *ApplicationAction) Reject(ctx context.Context, employerID uuid.UUID, applicationID int64) error {
	return u.decide(ctx, employerID, applicationID, application.StatusRejected, "reject")
}

// decide moves a pending application to its terminal employer decision.
// Transitions are forward only; a decided application never re-enters the
// pending flow.
func (u *ApplicationAction) decide(ctx context.Context, employerID uuid.UUID, applicationID int64, target application.Status, verb string) error {
	release, err := u.acquireActionLock(ctx, applicationID, verb)
	if err != nil {
		return err
	}
	defer release()

	app, err := u.api.GetApplication(ctx, applicationID)
	if err != nil {
		return mapBackendError(err)
	}
	if app.Posting.EmployerID != employerID {
		return ErrForbidden
	}
	if app.Status != application.StatusPending {
		return ErrNotPending
	}

	if err := u.api.UpdateApplicationStatus(ctx, applicationID, target); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Applications] %s failed application=%d err=%v", verb, applicationID, err)
		}
		return mapBackendError(err)
	}

	u.afterMutation(ctx, app.WorkerID)
	return nil
}

func (u *ApplicationAction) Cancel(ctx context.Context, workerID uuid.UUID, applicationID int64) error {
	release, err := u.acquireActionLock(ctx, applicationID, "cancel")
	if err != nil {
		return err
	}
	defer release()

	app, err := u.api.GetApplication(ctx, applicationID)
	if err != nil {
		return mapBackendError(err)
	}
	if app.WorkerID != workerID {
		return ErrForbidden
	}
	if app.Status != application.StatusPending {
		return ErrNotPending
	}

	if err := u.api.CancelApplication(ctx, applicationID); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Applications] cancel failed application=%d err=%v", applicationID, err)
		}
		return mapBackendError(err)
	}

	u.afterMutation(ctx, workerID)
	return nil
}

// acquireActionLock rejects a duplicate submission of the same action while
// an earlier request is still outstanding. Without Redis the lock degrades to
// a no-op and the core API remains the authority.
func (u *ApplicationAction) acquireActionLock(ctx context.Context, applicationID int64, verb string) (func(), error) {
	if u.cache == nil {
		return func() {}, nil
	}

	key := ApplicationActionLockKey(applicationID, verb)
	ok, err := u.cache.SetIfNotExists(ctx, key, "1", 30*time.Second)
	if err != nil {
		return func() {}, nil
	}
	if !ok {
		return nil, ErrActionInFlight
	}
	return func() { _ = u.cache.Delete(ctx, key) }, nil
}

func (u *ApplicationAction) afterMutation(ctx context.Context, workerID uuid.UUID) {
	if u.cache != nil {
		_ = u.cache.InvalidateWorkerApplications(ctx, workerID.String())
	}
	if u.notifier != nil {
		u.notifier.NotifyApplicationsUpdated(workerID)
	}
}

func mapBackendError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, backend.ErrConflict):
		return ErrNotPending
	case errors.Is(err, backend.ErrUnauthorized):
		return ErrForbidden
	default:
		return ErrInternal
	}
}
