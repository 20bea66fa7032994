package service

import (
	"context"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	"github.com/clubdesk/clubdesk-api/internal/domain/enum"
	"github.com/clubdesk/clubdesk-api/internal/domain/repository"
	"github.com/clubdesk/clubdesk-api/pkg/apperror"
	"github.com/clubdesk/clubdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// CastService handles the staff registry
type CastService struct {
	castRepo repository.CastRepository
}

// NewCastService creates a new cast service
func NewCastService(castRepo repository.CastRepository) *CastService {
	return &CastService{castRepo: castRepo}
}

// CastInput carries the mutable cast fields for create and update
type CastInput struct {
	Name          string
	SalarySystem  enum.SalarySystem
	MonthlySalary *int64
	HourlyWage    *int64
	BackSetting   enum.BackSetting
}

// validate checks the salary fields against the salary system and clears the
// one that does not apply, so a cast never carries both.
func (in *CastInput) validate() error {
	if !in.SalarySystem.IsValid() {
		return apperror.NewBadRequestError("Invalid salary system")
	}
	if !in.BackSetting.IsValid() {
		return apperror.NewBadRequestError("Invalid back setting")
	}

	switch in.SalarySystem {
	case enum.SalarySystemMonthly:
		if in.MonthlySalary == nil {
			return apperror.NewBadRequestError("Monthly salary is required for monthly-salaried casts")
		}
		in.HourlyWage = nil
	case enum.SalarySystemHourly:
		if in.HourlyWage == nil {
			return apperror.NewBadRequestError("Hourly wage is required for hourly casts")
		}
		in.MonthlySalary = nil
	}
	return nil
}

// Create registers a new cast for the store
func (s *CastService) Create(ctx context.Context, storeID uuid.UUID, input *CastInput) (*entity.Cast, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	cast := &entity.Cast{
		StoreID:       storeID,
		Name:          input.Name,
		SalarySystem:  input.SalarySystem,
		MonthlySalary: input.MonthlySalary,
		HourlyWage:    input.HourlyWage,
		BackSetting:   input.BackSetting,
	}
	if err := s.castRepo.Create(ctx, cast); err != nil {
		return nil, err
	}
	return cast, nil
}

// Get returns one cast, scoped to the store
func (s *CastService) Get(ctx context.Context, storeID, castID uuid.UUID) (*entity.Cast, error) {
	cast, err := s.castRepo.GetByID(ctx, castID)
	if err != nil {
		return nil, err
	}
	if cast == nil || cast.StoreID != storeID {
		return nil, apperror.NewNotFoundError("Cast")
	}
	return cast, nil
}

// List returns the store's casts with pagination
func (s *CastService) List(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Cast], error) {
	casts, total, err := s.castRepo.ListByStore(ctx, storeID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(casts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Update modifies an existing cast
func (s *CastService) Update(ctx context.Context, storeID, castID uuid.UUID, input *CastInput) (*entity.Cast, error) {
	cast, err := s.Get(ctx, storeID, castID)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	cast.Name = input.Name
	cast.SalarySystem = input.SalarySystem
	cast.MonthlySalary = input.MonthlySalary
	cast.HourlyWage = input.HourlyWage
	cast.BackSetting = input.BackSetting

	if err := s.castRepo.Update(ctx, cast); err != nil {
		return nil, err
	}
	return cast, nil
}

// Delete soft-deletes a cast. Historical performance rows are kept.
func (s *CastService) Delete(ctx context.Context, storeID, castID uuid.UUID) error {
	cast, err := s.Get(ctx, storeID, castID)
	if err != nil {
		return err
	}
	return s.castRepo.Delete(ctx, cast.ID)
}
