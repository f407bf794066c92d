package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"innosphere/internal/domain/application"

	"github.com/google/uuid"
)

type recordingNotifier struct {
	applications []uuid.UUID
	profiles     []uuid.UUID
}

func (n *recordingNotifier) NotifyApplicationsUpdated(workerID uuid.UUID) {
	n.applications = append(n.applications, workerID)
}

func (n *recordingNotifier) NotifyProfileUpdated(workerID uuid.UUID) {
	n.profiles = append(n.profiles, workerID)
}

func pendingApp(id int64, workerID, employerID uuid.UUID) application.JobApplication {
	app := appAt(id, application.StatusPending, application.PostingApproved, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), workerID)
	app.Posting.EmployerID = employerID
	return app
}

func TestApplicationAction_HirePending(t *testing.T) {
	workerID := uuid.New()
	employerID := uuid.New()
	api := &mockApplicationAPI{apps: map[int64]application.JobApplication{
		1: pendingApp(1, workerID, employerID),
	}}
	notifier := &recordingNotifier{}

	uc := NewApplicationActionUsecase(api, nil, notifier, nil)
	if err := uc.Hire(context.Background(), employerID, 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if api.statusUpdates[1] != application.StatusAccepted {
		t.Fatalf("expected ACCEPTED update, got %q", api.statusUpdates[1])
	}
	if len(notifier.applications) != 1 || notifier.applications[0] != workerID {
		t.Fatalf("expected refresh event for worker, got %v", notifier.applications)
	}
}

func TestApplicationAction_HireWrongEmployer(t *testing.T) {
	api := &mockApplicationAPI{apps: map[int64]application.JobApplication{
		1: pendingApp(1, uuid.New(), uuid.New()),
	}}

	uc := NewApplicationActionUsecase(api, nil, nil, nil)
	if err := uc.Hire(context.Background(), uuid.New(), 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(api.statusUpdates) != 0 {
		t.Fatalf("no mutation expected")
	}
}

func TestApplicationAction_DecideNonPending(t *testing.T) {
	workerID := uuid.New()
	employerID := uuid.New()
	decided := appAt(2, application.StatusAccepted, application.PostingApproved, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), workerID)
	decided.Posting.EmployerID = employerID
	api := &mockApplicationAPI{apps: map[int64]application.JobApplication{2: decided}}

	uc := NewApplicationActionUsecase(api, nil, nil, nil)
	if err := uc.Reject(context.Background(), employerID, 2); !errors.Is(err, ErrNotPending) {
		t.Fatalf("expected ErrNotPending, got %v", err)
	}
}

func TestApplicationAction_CancelPending(t *testing.T) {
	workerID := uuid.New()
	api := &mockApplicationAPI{apps: map[int64]application.JobApplication{
		3: pendingApp(3, workerID, uuid.New()),
	}}
	notifier := &recordingNotifier{}

	uc := NewApplicationActionUsecase(api, nil, notifier, nil)
	if err := uc.Cancel(context.Background(), workerID, 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(api.cancelled) != 1 || api.cancelled[0] != 3 {
		t.Fatalf("expected cancel call for id 3, got %v", api.cancelled)
	}
}

func TestApplicationAction_CancelDecidedApplication(t *testing.T) {
	workerID := uuid.New()
	decided := appAt(4, application.StatusRejected, application.PostingApproved, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), workerID)
	api := &mockApplicationAPI{apps: map[int64]application.JobApplication{4: decided}}

	uc := NewApplicationActionUsecase(api, nil, nil, nil)
	if err := uc.Cancel(context.Background(), workerID, 4); !errors.Is(err, ErrNotPending) {
		t.Fatalf("expected ErrNotPending, got %v", err)
	}
	if len(api.cancelled) != 0 {
		t.Fatalf("no cancel call expected")
	}
}

func TestApplicationAction_CancelOtherWorkersApplication(t *testing.T) {
	api := &mockApplicationAPI{apps: map[int64]application.JobApplication{
		5: pendingApp(5, uuid.New(), uuid.New()),
	}}

	uc := NewApplicationActionUsecase(api, nil, nil, nil)
	if err := uc.Cancel(context.Background(), uuid.New(), 5); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
