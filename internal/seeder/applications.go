package seeder

import (
	"time"

	"innosphere/internal/domain/application"
)

// FallbackApplications returns the static rows dashboards render when the
// core API has nothing for the worker yet. IDs are negative so they can
// never collide with backend-assigned identifiers, and the rating action is
// never offered on them.
func FallbackApplications() []application.JobApplication {
	return []application.JobApplication{
		{
			ID:     -1,
			Status: application.StatusPending,
			Posting: application.PostingSnapshot{
				ID:          -1,
				Status:      application.PostingApproved,
				CompanyName: "Highlands Coffee",
				CityName:    "Hồ Chí Minh",
				HourlyRate:  27000,
				StartTime:   time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
				EndTime:     time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
			},
			AppliedAt: time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:     -2,
			Status: application.StatusPending,
			Posting: application.PostingSnapshot{
				ID:          -2,
				Status:      application.PostingApproved,
				CompanyName: "Circle K",
				CityName:    "Hà Nội",
				HourlyRate:  25000,
				StartTime:   time.Date(2025, 1, 20, 18, 0, 0, 0, time.UTC),
				EndTime:     time.Date(2025, 1, 20, 22, 0, 0, 0, time.UTC),
			},
			AppliedAt: time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC),
		},
	}
}
