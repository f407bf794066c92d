package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

type PostingStatus string

const (
	PostingApproved  PostingStatus = "APPROVED"
	PostingCompleted PostingStatus = "COMPLETED"
	PostingClosed    PostingStatus = "CLOSED"
)

// PostingSnapshot is the job-posting summary nested in an application record.
// The core API owns the full posting; only the fields the UI renders travel here.
type PostingSnapshot struct {
	ID          int64
	Status      PostingStatus
	EmployerID  uuid.UUID
	CompanyName string
	StartTime   time.Time
	EndTime     time.Time
	HourlyRate  float64
	CityName    string
}

type JobApplication struct {
	ID        int64
	Status    Status
	Posting   PostingSnapshot
	WorkerID  uuid.UUID
	AppliedAt time.Time
}
