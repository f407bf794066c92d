package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"innosphere/internal/domain/application"
	"innosphere/internal/domain/rating"

	"github.com/google/uuid"
)

func TestListApplications_MapsPayload(t *testing.T) {
	workerID := uuid.New()
	employerID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/job-applications" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("workerId"); got != workerID.String() {
			t.Errorf("unexpected workerId %s", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{
			"id":                int64(12),
			"applicationStatus": "accepted",
			"workerId":          workerID.String(),
			"appliedAt":         time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			"jobPosting": map[string]any{
				"id":          int64(7),
				"status":      "completed",
				"employerId":  employerID.String(),
				"companyName": "InnoSphere Co",
				"hourlyRate":  35000.0,
				"cityName":    "Đà Nẵng",
			},
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	apps, err := c.ListApplications(context.Background(), workerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}

	app := apps[0]
	if app.ID != 12 {
		t.Fatalf("unexpected id %d", app.ID)
	}
	if app.Status != application.StatusAccepted {
		t.Fatalf("status not normalized to upper case: %q", app.Status)
	}
	if app.Posting.Status != application.PostingCompleted {
		t.Fatalf("posting status not normalized: %q", app.Posting.Status)
	}
	if app.Posting.EmployerID != employerID {
		t.Fatalf("employer id not parsed")
	}
}

func TestSubmitRating_PayloadShape(t *testing.T) {
	var got submitRatingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/ratings" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	err := c.SubmitRating(context.Background(), rating.Submission{
		JobApplicationID: 12,
		WorkerID:         uuid.New(),
		EmployerID:       uuid.New(),
		Comment:          "  nhân viên tốt  ",
		Details:          []rating.Detail{{CriteriaID: 1, Score: 5}, {CriteriaID: 2, Score: 4}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got.JobApplicationID != 12 {
		t.Fatalf("unexpected jobApplicationId %d", got.JobApplicationID)
	}
	if got.Comment != "nhân viên tốt" {
		t.Fatalf("comment not trimmed: %q", got.Comment)
	}
	if len(got.Details) != 2 || got.Details[0].RatingCriteriaID != 1 || got.Details[0].Score != 5 {
		t.Fatalf("unexpected details: %+v", got.Details)
	}
}

func TestDoJSON_StatusMapping(t *testing.T) {
	cases := []struct {
		code int
		want error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.code)
		}))

		c := NewClient(srv.URL, time.Second, nil)
		_, err := c.GetApplication(context.Background(), 1)
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.code, tc.want, err)
		}
		srv.Close()
	}
}

func TestNewClient_EmptyBaseURL(t *testing.T) {
	if c := NewClient("  ", time.Second, nil); c != nil {
		t.Fatalf("expected nil client for empty base URL")
	}
}
