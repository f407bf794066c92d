package repository

import (
	"context"
	"log"

	"innosphere/internal/database"
	"innosphere/internal/ledger"

	"github.com/google/uuid"
)

// PostgresRatingLedger is the account-scoped rating ledger: entries key on
// (worker_id, application_id), so the rated set follows the account instead
// of the host profile. Reads fail open to the empty set like every other
// ledger backend.
type PostgresRatingLedger struct {
	db     database.DB
	logger *log.Logger
}

func NewPostgresRatingLedger(db database.DB, logger *log.Logger) *PostgresRatingLedger {
	return &PostgresRatingLedger{db: db, logger: logger}
}

// EnsureSchema creates the ledger table. The gateway owns no other tables.
func (r *PostgresRatingLedger) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS rated_applications (
			worker_id UUID NOT NULL,
			application_id BIGINT NOT NULL,
			rated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (worker_id, application_id)
		)`)
	return err
}

func (r *PostgresRatingLedger) IsRated(ctx context.Context, workerID uuid.UUID, applicationID int64) bool {
	if r == nil || r.db == nil {
		return false
	}

	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM rated_applications WHERE worker_id = $1 AND application_id = $2)`,
		workerID, applicationID,
	)
	if err := row.Scan(&exists); err != nil {
		if r.logger != nil {
			r.logger.Printf("[Ledger] read error worker=%s application=%d err=%v", workerID, applicationID, err)
		}
		return false
	}
	return exists
}

func (r *PostgresRatingLedger) MarkRated(ctx context.Context, workerID uuid.UUID, applicationID int64) error {
	if r == nil || r.db == nil {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO rated_applications (worker_id, application_id)
		 VALUES ($1, $2)
		 ON CONFLICT (worker_id, application_id) DO NOTHING`,
		workerID, applicationID,
	)
	return err
}

// Clear is a no-op here: the account-scoped ledger must survive logout,
// otherwise the rated marks would reappear on the next login and the only
// duplicate guard left would be the core API conflict.
func (r *PostgresRatingLedger) Clear(ctx context.Context, workerID uuid.UUID) error {
	return nil
}

var _ ledger.Ledger = (*PostgresRatingLedger)(nil)
