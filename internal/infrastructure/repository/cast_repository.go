package repository

import (
	"context"
	"errors"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	domainRepo "github.com/clubdesk/clubdesk-api/internal/domain/repository"
	"github.com/clubdesk/clubdesk-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type castRepository struct {
	db *gorm.DB
}

// NewCastRepository creates a new cast repository
func NewCastRepository(db *gorm.DB) domainRepo.CastRepository {
	return &castRepository{db: db}
}

func (r *castRepository) Create(ctx context.Context, cast *entity.Cast) error {
	return r.db.WithContext(ctx).Create(cast).Error
}

func (r *castRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cast, error) {
	var cast entity.Cast
	err := r.db.WithContext(ctx).First(&cast, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cast, err
}

func (r *castRepository) Update(ctx context.Context, cast *entity.Cast) error {
	return r.db.WithContext(ctx).Save(cast).Error
}

func (r *castRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Cast{}, "id = ?", id).Error
}

func (r *castRepository) ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.Cast, int64, error) {
	var casts []entity.Cast
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Cast{}).Where("store_id = ?", storeID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at ASC, id ASC").
		Find(&casts).Error

	return casts, total, err
}
