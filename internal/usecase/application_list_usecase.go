package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"innosphere/internal/domain/application"
	"innosphere/internal/infrastructure/backend"
	"innosphere/internal/ledger"

	"github.com/google/uuid"
)

const (
	RatingLabelRate  = "Đánh Giá"
	RatingLabelRated = "Đã đánh giá"
)

// listCacheTTL is short on purpose: mutations invalidate explicitly, the TTL
// only bounds staleness when an invalidation is missed.
const listCacheTTL = time.Minute

type ApplicationListParams struct {
	Limit       int
	Offset      int
	IncludeSeed bool
}

// DisplayRow is one render-ready list entry: the posting summary, the derived
// display status and the rating affordance already gated on the ledger.
type DisplayRow struct {
	ApplicationID int64
	CompanyName   string
	CityName      string
	HourlyRate    float64
	StartTime     time.Time
	EndTime       time.Time
	AppliedAt     time.Time
	Display       application.DisplayStatus
	RatingEnabled bool
	RatingLabel   string
	Seed          bool
}

type ApplicationListUsecase interface {
	ListApplications(ctx context.Context, workerID uuid.UUID, params ApplicationListParams) ([]DisplayRow, error)
	GetApplication(ctx context.Context, workerID uuid.UUID, applicationID int64) (DisplayRow, error)
}

type ApplicationList struct {
	api    backend.ApplicationAPI
	seeds  func() []application.JobApplication
	rated  ledger.Ledger
	cache  ListCache
	logger *log.Logger
}

func NewApplicationListUsecase(api backend.ApplicationAPI, seeds func() []application.JobApplication, rated ledger.Ledger, cache ListCache, logger *log.Logger) *ApplicationList {
	return &ApplicationList{api: api, seeds: seeds, rated: rated, cache: cache, logger: logger}
}

func (u *ApplicationList) ListApplications(ctx context.Context, workerID uuid.UUID, params ApplicationListParams) ([]DisplayRow, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 50 {
		return nil, ErrInvalidInput
	}
	offset := params.Offset
	if offset < 0 {
		return nil, ErrInvalidInput
	}
	params.Limit = limit
	params.Offset = offset

	cacheKey := ApplicationsListCacheKey(workerID, params)
	lockKey := ApplicationsListLockKey(cacheKey)

	if u.cache != nil {
		var cached []DisplayRow
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Applications] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			jitterMs := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitterMs)
			var cached []DisplayRow
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				return cached, nil
			}
		}
	}

	apps, err := u.api.ListApplications(ctx, workerID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Applications] list failed worker=%s err=%v", workerID, err)
		}
		return nil, ErrInternal
	}

	merged := apps
	if params.IncludeSeed && u.seeds != nil {
		merged = append(merged, u.seeds()...)
	}

	rows := u.buildDisplayList(ctx, workerID, merged)

	if offset >= len(rows) {
		rows = []DisplayRow{}
	} else {
		end := offset + limit
		if end > len(rows) {
			end = len(rows)
		}
		rows = rows[offset:end]
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, rows, listCacheTTL)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return rows, nil
}

func (u *ApplicationList) GetApplication(ctx context.Context, workerID uuid.UUID, applicationID int64) (DisplayRow, error) {
	app, err := u.api.GetApplication(ctx, applicationID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return DisplayRow{}, ErrNotFound
		}
		return DisplayRow{}, ErrInternal
	}
	if app.WorkerID != workerID {
		return DisplayRow{}, ErrForbidden
	}
	return u.toRow(ctx, workerID, app, false), nil
}

// buildDisplayList derives per-row display state, sorts most recent first and
// gates the rating affordance on the ledger snapshot. API rows enter before
// seed rows; the sort is stable, so equal keys keep that precedence.
func (u *ApplicationList) buildDisplayList(ctx context.Context, workerID uuid.UUID, apps []application.JobApplication) []DisplayRow {
	rows := make([]DisplayRow, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, u.toRow(ctx, workerID, a, a.ID < 0))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return sortKey(rows[i]).After(sortKey(rows[j]))
	})
	return rows
}

func (u *ApplicationList) toRow(ctx context.Context, workerID uuid.UUID, a application.JobApplication, seed bool) DisplayRow {
	display := application.ResolveDisplay(a.Status, a.Posting.Status)

	row := DisplayRow{
		ApplicationID: a.ID,
		CompanyName:   a.Posting.CompanyName,
		CityName:      a.Posting.CityName,
		HourlyRate:    a.Posting.HourlyRate,
		StartTime:     a.Posting.StartTime,
		EndTime:       a.Posting.EndTime,
		AppliedAt:     a.AppliedAt,
		Display:       display,
		Seed:          seed,
	}

	if display.Action == application.ActionRating {
		if u.rated != nil && u.rated.IsRated(ctx, workerID, a.ID) {
			row.RatingEnabled = false
			row.RatingLabel = RatingLabelRated
		} else {
			row.RatingEnabled = true
			row.RatingLabel = RatingLabelRate
		}
	}
	return row
}

func sortKey(r DisplayRow) time.Time {
	if !r.StartTime.IsZero() {
		return r.StartTime
	}
	return r.AppliedAt
}
