package repository

import (
	"context"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	"github.com/clubdesk/clubdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// CastRepository defines the interface for cast roster data operations.
// Deletes are soft: removed casts keep their historical performance rows.
type CastRepository interface {
	Create(ctx context.Context, cast *entity.Cast) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cast, error)
	Update(ctx context.Context, cast *entity.Cast) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByStore returns the store's non-deleted casts ordered by creation
	// time, with page-based pagination.
	ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.Cast, int64, error)
}
