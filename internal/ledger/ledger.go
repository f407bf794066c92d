package ledger

import (
	"context"

	"github.com/google/uuid"
)

// Ledger records which applications the current user has already rated, as a
// client-side duplicate-submission guard. The core API stays authoritative:
// a race that slips past the ledger must surface as a normal conflict, never
// a crash.
//
// IsRated fails open: an unreadable or corrupt backing store reads as the
// empty set.
type Ledger interface {
	IsRated(ctx context.Context, workerID uuid.UUID, applicationID int64) bool
	MarkRated(ctx context.Context, workerID uuid.UUID, applicationID int64) error
	Clear(ctx context.Context, workerID uuid.UUID) error
}
