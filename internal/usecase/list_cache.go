package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	InvalidateWorkerApplications(ctx context.Context, workerID string) error
}

func ApplicationsListCacheKey(workerID uuid.UUID, params ApplicationListParams) string {
	return fmt.Sprintf("applications:list:%s:%d:%d:%t", workerID, params.Limit, params.Offset, params.IncludeSeed)
}

func ApplicationsListLockKey(cacheKey string) string {
	cacheKey = strings.TrimSpace(cacheKey)
	if strings.HasPrefix(cacheKey, "applications:list:") {
		return "applications:lock:" + strings.TrimPrefix(cacheKey, "applications:list:")
	}
	return "applications:lock:" + cacheKey
}

// ApplicationActionLockKey guards one mutating action per application while a
// request is outstanding, so a double click cannot submit twice.
func ApplicationActionLockKey(applicationID int64, verb string) string {
	return fmt.Sprintf("applications:action:%d:%s", applicationID, verb)
}
