package service

import (
	"context"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	"github.com/clubdesk/clubdesk-api/internal/domain/repository"
	"github.com/clubdesk/clubdesk-api/pkg/apperror"
	"github.com/google/uuid"
)

// StoreService handles store data operations
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// Get returns one store by ID
func (s *StoreService) Get(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return store, nil
}

// UpdateStoreInput represents the store update input
type UpdateStoreInput struct {
	Name    string
	Address *string
}

// Update modifies the store's profile
func (s *StoreService) Update(ctx context.Context, storeID uuid.UUID, input *UpdateStoreInput) (*entity.Store, error) {
	store, err := s.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		store.Name = input.Name
	}
	if input.Address != nil {
		store.Address = input.Address
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}
