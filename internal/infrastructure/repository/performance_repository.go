package repository

import (
	"context"
	"errors"
	"time"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	domainRepo "github.com/clubdesk/clubdesk-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type castPerformanceRepository struct {
	db *gorm.DB
}

// NewCastPerformanceRepository creates a new cast performance repository
func NewCastPerformanceRepository(db *gorm.DB) domainRepo.CastPerformanceRepository {
	return &castPerformanceRepository{db: db}
}

func (r *castPerformanceRepository) Create(ctx context.Context, perf *entity.CastDailyPerformance) error {
	return r.db.WithContext(ctx).Create(perf).Error
}

func (r *castPerformanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CastDailyPerformance, error) {
	var perf entity.CastDailyPerformance
	err := r.db.WithContext(ctx).First(&perf, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &perf, err
}

func (r *castPerformanceRepository) Update(ctx context.Context, perf *entity.CastDailyPerformance) error {
	return r.db.WithContext(ctx).Save(perf).Error
}

func (r *castPerformanceRepository) ListByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) ([]entity.CastDailyPerformance, error) {
	var perfs []entity.CastDailyPerformance
	err := r.db.WithContext(ctx).
		Preload("Cast", func(db *gorm.DB) *gorm.DB {
			// include soft-deleted casts so historical rows keep their names
			return db.Unscoped()
		}).
		Where("store_id = ? AND performance_date = ?", storeID, date.Format("2006-01-02")).
		Order("cast_id ASC, created_at ASC").
		Find(&perfs).Error
	return perfs, err
}

func (r *castPerformanceRepository) ListByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]entity.CastDailyPerformance, error) {
	var perfs []entity.CastDailyPerformance
	err := r.db.WithContext(ctx).
		Preload("Cast", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where("store_id = ? AND performance_date >= ? AND performance_date < ?",
			storeID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("performance_date ASC, cast_id ASC").
		Find(&perfs).Error
	return perfs, err
}

func (r *castPerformanceRepository) SoftDeleteByCastAndDate(ctx context.Context, storeID, castID uuid.UUID, date time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("store_id = ? AND cast_id = ? AND performance_date = ?",
			storeID, castID, date.Format("2006-01-02")).
		Delete(&entity.CastDailyPerformance{})
	return result.RowsAffected, result.Error
}

type storePerformanceRepository struct {
	db *gorm.DB
}

// NewStorePerformanceRepository creates a new store performance repository
func NewStorePerformanceRepository(db *gorm.DB) domainRepo.StorePerformanceRepository {
	return &storePerformanceRepository{db: db}
}

func (r *storePerformanceRepository) Create(ctx context.Context, perf *entity.StoreDailyPerformance) error {
	return r.db.WithContext(ctx).Create(perf).Error
}

func (r *storePerformanceRepository) Update(ctx context.Context, perf *entity.StoreDailyPerformance) error {
	return r.db.WithContext(ctx).Save(perf).Error
}

func (r *storePerformanceRepository) GetByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*entity.StoreDailyPerformance, error) {
	var perf entity.StoreDailyPerformance
	err := r.db.WithContext(ctx).
		First(&perf, "store_id = ? AND performance_date = ?", storeID, date.Format("2006-01-02")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &perf, err
}

func (r *storePerformanceRepository) ListByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]entity.StoreDailyPerformance, error) {
	var perfs []entity.StoreDailyPerformance
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND performance_date >= ? AND performance_date < ?",
			storeID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("performance_date ASC").
		Find(&perfs).Error
	return perfs, err
}
