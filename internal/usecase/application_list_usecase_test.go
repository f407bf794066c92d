package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"innosphere/internal/domain/application"

	"github.com/google/uuid"
)

type mockApplicationAPI struct {
	apps map[int64]application.JobApplication
	list []application.JobApplication
	err  error

	statusUpdates map[int64]application.Status
	cancelled     []int64
}

func (m *mockApplicationAPI) ListApplications(context.Context, uuid.UUID) ([]application.JobApplication, error) {
	return m.list, m.err
}

func (m *mockApplicationAPI) GetApplication(_ context.Context, id int64) (application.JobApplication, error) {
	if m.err != nil {
		return application.JobApplication{}, m.err
	}
	app, ok := m.apps[id]
	if !ok {
		return application.JobApplication{}, errors.New("not found")
	}
	return app, nil
}

func (m *mockApplicationAPI) UpdateApplicationStatus(_ context.Context, id int64, status application.Status) error {
	if m.statusUpdates == nil {
		m.statusUpdates = make(map[int64]application.Status)
	}
	m.statusUpdates[id] = status
	return nil
}

func (m *mockApplicationAPI) CancelApplication(_ context.Context, id int64) error {
	m.cancelled = append(m.cancelled, id)
	return nil
}

type memLedger struct {
	rated map[int64]bool
}

func newMemLedger() *memLedger { return &memLedger{rated: make(map[int64]bool)} }

func (l *memLedger) IsRated(_ context.Context, _ uuid.UUID, id int64) bool { return l.rated[id] }
func (l *memLedger) MarkRated(_ context.Context, _ uuid.UUID, id int64) error {
	l.rated[id] = true
	return nil
}
func (l *memLedger) Clear(context.Context, uuid.UUID) error {
	l.rated = make(map[int64]bool)
	return nil
}

func appAt(id int64, status application.Status, postingStatus application.PostingStatus, start time.Time, workerID uuid.UUID) application.JobApplication {
	return application.JobApplication{
		ID:     id,
		Status: status,
		Posting: application.PostingSnapshot{
			ID:          id,
			Status:      postingStatus,
			CompanyName: "Acme",
			StartTime:   start,
		},
		WorkerID:  workerID,
		AppliedAt: start.Add(-48 * time.Hour),
	}
}

func TestApplicationList_InvalidParams(t *testing.T) {
	uc := NewApplicationListUsecase(&mockApplicationAPI{}, nil, newMemLedger(), nil, nil)

	if _, err := uc.ListApplications(context.Background(), uuid.New(), ApplicationListParams{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative limit, got %v", err)
	}
	if _, err := uc.ListApplications(context.Background(), uuid.New(), ApplicationListParams{Limit: 51}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for limit over 50, got %v", err)
	}
	if _, err := uc.ListApplications(context.Background(), uuid.New(), ApplicationListParams{Offset: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative offset, got %v", err)
	}
}

func TestApplicationList_MergeOrdering(t *testing.T) {
	workerID := uuid.New()
	api := &mockApplicationAPI{list: []application.JobApplication{
		appAt(1, application.StatusPending, application.PostingApproved, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), workerID),
		appAt(2, application.StatusPending, application.PostingApproved, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), workerID),
	}}
	seeds := func() []application.JobApplication {
		return []application.JobApplication{
			appAt(-1, application.StatusPending, application.PostingApproved, time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC), uuid.Nil),
		}
	}

	uc := NewApplicationListUsecase(api, seeds, newMemLedger(), nil, nil)
	rows, err := uc.ListApplications(context.Background(), workerID, ApplicationListParams{IncludeSeed: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ApplicationID != 2 {
		t.Fatalf("expected most recent row first, got id %d", rows[0].ApplicationID)
	}
	if rows[2].ApplicationID != -1 || !rows[2].Seed {
		t.Fatalf("expected seed row last, got %+v", rows[2])
	}
}

func TestApplicationList_RatingGating(t *testing.T) {
	workerID := uuid.New()
	api := &mockApplicationAPI{list: []application.JobApplication{
		appAt(10, application.StatusAccepted, application.PostingCompleted, time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC), workerID),
		appAt(11, application.StatusAccepted, application.PostingClosed, time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC), workerID),
	}}
	rated := newMemLedger()
	rated.rated[11] = true

	uc := NewApplicationListUsecase(api, nil, rated, nil, nil)
	rows, err := uc.ListApplications(context.Background(), workerID, ApplicationListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !rows[0].RatingEnabled || rows[0].RatingLabel != RatingLabelRate {
		t.Fatalf("unrated row: expected enabled %q, got %+v", RatingLabelRate, rows[0])
	}
	if rows[1].RatingEnabled || rows[1].RatingLabel != RatingLabelRated {
		t.Fatalf("rated row: expected disabled %q, got %+v", RatingLabelRated, rows[1])
	}
}

func TestApplicationList_NoRatingAffordanceOnActiveRow(t *testing.T) {
	workerID := uuid.New()
	api := &mockApplicationAPI{list: []application.JobApplication{
		appAt(20, application.StatusAccepted, application.PostingApproved, time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC), workerID),
	}}

	uc := NewApplicationListUsecase(api, nil, newMemLedger(), nil, nil)
	rows, err := uc.ListApplications(context.Background(), workerID, ApplicationListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rows[0].RatingEnabled || rows[0].RatingLabel != "" {
		t.Fatalf("active row must carry no rating affordance, got %+v", rows[0])
	}
	if rows[0].Display.Text != application.TextActive {
		t.Fatalf("expected active text, got %q", rows[0].Display.Text)
	}
}

func TestApplicationList_Pagination(t *testing.T) {
	workerID := uuid.New()
	var list []application.JobApplication
	for i := int64(1); i <= 5; i++ {
		list = append(list, appAt(i, application.StatusPending, application.PostingApproved,
			time.Date(2025, 3, int(i), 8, 0, 0, 0, time.UTC), workerID))
	}
	api := &mockApplicationAPI{list: list}

	uc := NewApplicationListUsecase(api, nil, newMemLedger(), nil, nil)
	rows, err := uc.ListApplications(context.Background(), workerID, ApplicationListParams{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Full order is 5,4,3,2,1; offset 1 limit 2 yields 4,3.
	if rows[0].ApplicationID != 4 || rows[1].ApplicationID != 3 {
		t.Fatalf("unexpected page: %d, %d", rows[0].ApplicationID, rows[1].ApplicationID)
	}

	empty, err := uc.ListApplications(context.Background(), workerID, ApplicationListParams{Limit: 2, Offset: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page past the end, got %d rows", len(empty))
	}
}

func TestApplicationList_GetApplicationForbidden(t *testing.T) {
	owner := uuid.New()
	api := &mockApplicationAPI{apps: map[int64]application.JobApplication{
		7: appAt(7, application.StatusPending, application.PostingApproved, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), owner),
	}}

	uc := NewApplicationListUsecase(api, nil, newMemLedger(), nil, nil)
	if _, err := uc.GetApplication(context.Background(), uuid.New(), 7); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.GetApplication(context.Background(), owner, 7); err != nil {
		t.Fatalf("owner fetch failed: %v", err)
	}
}
