package repository

import (
	"context"
	"time"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	"github.com/google/uuid"
)

// CastPerformanceRepository defines the interface for per-cast daily report
// rows. All queries exclude soft-deleted rows.
type CastPerformanceRepository interface {
	Create(ctx context.Context, perf *entity.CastDailyPerformance) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CastDailyPerformance, error)
	Update(ctx context.Context, perf *entity.CastDailyPerformance) error
	// ListByStoreAndDate returns the rows for one store day with the cast
	// master preloaded, ordered by cast id.
	ListByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) ([]entity.CastDailyPerformance, error)
	// ListByStoreAndRange returns all rows with a date in [from, to), with
	// the cast master preloaded.
	ListByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]entity.CastDailyPerformance, error)
	// SoftDeleteByCastAndDate marks the cast's rows for the date as deleted
	// and reports how many rows were affected.
	SoftDeleteByCastAndDate(ctx context.Context, storeID, castID uuid.UUID, date time.Time) (int64, error)
}

// StorePerformanceRepository defines the interface for store-level daily
// cash-flow rows. The "one non-deleted row per store and date" invariant is
// upheld by callers through GetByStoreAndDate before Create.
type StorePerformanceRepository interface {
	Create(ctx context.Context, perf *entity.StoreDailyPerformance) error
	Update(ctx context.Context, perf *entity.StoreDailyPerformance) error
	GetByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*entity.StoreDailyPerformance, error)
	// ListByStoreAndRange returns all rows with a date in [from, to).
	ListByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]entity.StoreDailyPerformance, error)
}
