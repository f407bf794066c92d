package rating

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	MinScore = 1
	MaxScore = 5
)

var (
	ErrUnscoredCriteria  = errors.New("every rating criteria must be scored")
	ErrScoreOutOfRange   = errors.New("score out of range")
	ErrUnknownCriteria   = errors.New("unknown rating criteria")
	ErrDuplicateCriteria = errors.New("duplicate rating criteria")
)

type Criteria struct {
	ID   int64
	Name string
}

type Detail struct {
	CriteriaID int64
	Score      int
}

type Submission struct {
	JobApplicationID int64
	WorkerID         uuid.UUID
	EmployerID       uuid.UUID
	Comment          string
	Details          []Detail
}

// ValidateDetails checks a submission's scores against the criteria catalog:
// each known criterion scored exactly once, every score within 1..5. An
// unscored criterion (score 0 or missing) blocks submission before any
// network call.
func ValidateDetails(criteria []Criteria, details []Detail) error {
	known := make(map[int64]bool, len(criteria))
	for _, c := range criteria {
		known[c.ID] = false
	}

	for _, d := range details {
		seen, ok := known[d.CriteriaID]
		if !ok {
			return fmt.Errorf("%w: id=%d", ErrUnknownCriteria, d.CriteriaID)
		}
		if seen {
			return fmt.Errorf("%w: id=%d", ErrDuplicateCriteria, d.CriteriaID)
		}
		if d.Score < MinScore || d.Score > MaxScore {
			return fmt.Errorf("%w: id=%d score=%d", ErrScoreOutOfRange, d.CriteriaID, d.Score)
		}
		known[d.CriteriaID] = true
	}

	for id, seen := range known {
		if !seen {
			return fmt.Errorf("%w: id=%d", ErrUnscoredCriteria, id)
		}
	}
	return nil
}
