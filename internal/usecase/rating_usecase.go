package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"innosphere/internal/domain/application"
	"innosphere/internal/domain/rating"
	"innosphere/internal/infrastructure/backend"
	"innosphere/internal/ledger"

	"github.com/google/uuid"
)

type SubmitRatingInput struct {
	JobApplicationID int64
	Comment          string
	Scores           []rating.Detail
}

type RatingUsecase interface {
	ListCriteria(ctx context.Context) ([]rating.Criteria, error)
	SubmitRating(ctx context.Context, workerID uuid.UUID, in SubmitRatingInput) error
}

type Rating struct {
	applications backend.ApplicationAPI
	ratings      backend.RatingAPI
	rated        ledger.Ledger
	cache        ListCache
	notifier     refreshNotifier
	logger       *log.Logger
}

func NewRatingUsecase(applications backend.ApplicationAPI, ratings backend.RatingAPI, rated ledger.Ledger, cache ListCache, notifier refreshNotifier, logger *log.Logger) *Rating {
	return &Rating{applications: applications, ratings: ratings, rated: rated, cache: cache, notifier: notifier, logger: logger}
}

func (u *Rating) ListCriteria(ctx context.Context) ([]rating.Criteria, error) {
	criteria, err := u.ratings.ListRatingCriteria(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return criteria, nil
}

// SubmitRating runs the whole workflow: ledger pre-check, criteria
// validation, submission, ledger mark, cache invalidation, refresh event.
// Validation failures never reach the network.
func (u *Rating) SubmitRating(ctx context.Context, workerID uuid.UUID, in SubmitRatingInput) error {
	if in.JobApplicationID == 0 {
		return ErrInvalidInput
	}

	if u.rated != nil && u.rated.IsRated(ctx, workerID, in.JobApplicationID) {
		return ErrAlreadyRated
	}

	release, err := u.acquireLock(ctx, in.JobApplicationID)
	if err != nil {
		return err
	}
	defer release()

	app, err := u.applications.GetApplication(ctx, in.JobApplicationID)
	if err != nil {
		return mapBackendError(err)
	}
	if app.WorkerID != workerID {
		return ErrForbidden
	}
	if application.ResolveDisplay(app.Status, app.Posting.Status).Action != application.ActionRating {
		return ErrNotRatable
	}

	criteria, err := u.ratings.ListRatingCriteria(ctx)
	if err != nil {
		return ErrInternal
	}
	if err := rating.ValidateDetails(criteria, in.Scores); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	sub := rating.Submission{
		JobApplicationID: in.JobApplicationID,
		WorkerID:         workerID,
		EmployerID:       app.Posting.EmployerID,
		Comment:          in.Comment,
		Details:          in.Scores,
	}
	if err := u.ratings.SubmitRating(ctx, sub); err != nil {
		if errors.Is(err, backend.ErrConflict) {
			// Another tab won the race; the backend already holds a rating.
			// Mark the ledger so the UI converges on the disabled action.
			u.markRated(ctx, workerID, in.JobApplicationID)
			return ErrAlreadyRated
		}
		if u.logger != nil {
			u.logger.Printf("[Ratings] submit failed application=%d err=%v", in.JobApplicationID, err)
		}
		return mapBackendError(err)
	}

	u.markRated(ctx, workerID, in.JobApplicationID)
	if u.notifier != nil {
		u.notifier.NotifyApplicationsUpdated(workerID)
	}
	return nil
}

func (u *Rating) markRated(ctx context.Context, workerID uuid.UUID, applicationID int64) {
	if u.rated != nil {
		if err := u.rated.MarkRated(ctx, workerID, applicationID); err != nil && u.logger != nil {
			u.logger.Printf("[Ratings] ledger mark failed application=%d err=%v", applicationID, err)
		}
	}
	if u.cache != nil {
		_ = u.cache.InvalidateWorkerApplications(ctx, workerID.String())
	}
}

func (u *Rating) acquireLock(ctx context.Context, applicationID int64) (func(), error) {
	if u.cache == nil {
		return func() {}, nil
	}

	key := ApplicationActionLockKey(applicationID, "rate")
	ok, err := u.cache.SetIfNotExists(ctx, key, "1", 30*time.Second)
	if err != nil {
		return func() {}, nil
	}
	if !ok {
		return nil, ErrActionInFlight
	}
	return func() { _ = u.cache.Delete(ctx, key) }, nil
}
