package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	"github.com/clubdesk/clubdesk-api/internal/domain/report"
	"github.com/clubdesk/clubdesk-api/internal/domain/repository"
	"github.com/clubdesk/clubdesk-api/internal/infrastructure/cache"
	"github.com/clubdesk/clubdesk-api/pkg/apperror"
	"github.com/google/uuid"
)

// DailyReportService handles the per-cast daily attendance and commission
// report. Derived columns are recomputed from the input columns on every
// save and again on every read.
type DailyReportService struct {
	castRepo repository.CastRepository
	perfRepo repository.CastPerformanceRepository
	cache    cache.ReportCache
}

// NewDailyReportService creates a new daily report service
func NewDailyReportService(
	castRepo repository.CastRepository,
	perfRepo repository.CastPerformanceRepository,
	reportCache cache.ReportCache,
) *DailyReportService {
	return &DailyReportService{
		castRepo: castRepo,
		perfRepo: perfRepo,
		cache:    reportCache,
	}
}

// DailyReportRow is one cast's performance row joined with the cast master
// fields the report screen needs.
type DailyReportRow struct {
	entity.CastDailyPerformance
	CastName   string `json:"cast_name"`
	HourlyRate int64  `json:"hourly_rate"`
}

// GetDailyReport returns all non-deleted rows for the store and date, with
// fresh derived values.
func (s *DailyReportService) GetDailyReport(ctx context.Context, storeID uuid.UUID, date time.Time) ([]DailyReportRow, error) {
	perfs, err := s.perfRepo.ListByStoreAndDate(ctx, storeID, date)
	if err != nil {
		return nil, err
	}

	rows := make([]DailyReportRow, 0, len(perfs))
	for i := range perfs {
		perf := perfs[i]
		recomputeDerived(&perf, perf.Cast.HourlyRate())
		rows = append(rows, DailyReportRow{
			CastDailyPerformance: perf,
			CastName:             perf.Cast.Name,
			HourlyRate:           perf.Cast.HourlyRate(),
		})
	}
	return rows, nil
}

// DailyReportRowInput carries the editable columns of one row. A nil ID
// creates a new row; a set ID updates the existing one.
type DailyReportRowInput struct {
	ID     *uuid.UUID
	CastID uuid.UUID

	StartTime string
	EndTime   string
	Overtime  int

	DrinkSubtotal      int64
	DrinkSubtotalBack  int64
	BottleSubtotal     int64
	BottleSubtotalBack int64
	FoodSubtotal       int64
	FoodSubtotalBack   int64
	Bonus              int64

	WelfareCost  int64
	DailyPayment int64

	AbsenceDeduction   int64
	SoriDeduction      int64
	TardinessDeduction int64
	OtherDeductions    int64
}

// SaveDailyReport bulk-upserts the rows for one store day and returns the
// saved report with fresh derived values.
func (s *DailyReportService) SaveDailyReport(ctx context.Context, storeID uuid.UUID, date time.Time, inputs []DailyReportRowInput) ([]DailyReportRow, error) {
	for _, in := range inputs {
		cast, err := s.castRepo.GetByID(ctx, in.CastID)
		if err != nil {
			return nil, err
		}
		if cast == nil || cast.StoreID != storeID {
			return nil, apperror.NewNotFoundError("Cast")
		}

		var perf *entity.CastDailyPerformance
		if in.ID != nil {
			perf, err = s.perfRepo.GetByID(ctx, *in.ID)
			if err != nil {
				return nil, err
			}
			if perf == nil || perf.StoreID != storeID {
				return nil, apperror.NewNotFoundError("Report row")
			}
		} else {
			perf = &entity.CastDailyPerformance{
				CastID:          cast.ID,
				StoreID:         storeID,
				PerformanceDate: date,
			}
		}

		applyRowInput(perf, in)
		recomputeDerived(perf, cast.HourlyRate())

		if in.ID != nil {
			err = s.perfRepo.Update(ctx, perf)
		} else {
			err = s.perfRepo.Create(ctx, perf)
		}
		if err != nil {
			return nil, err
		}
	}

	s.invalidateMonth(ctx, storeID, date)
	return s.GetDailyReport(ctx, storeID, date)
}

// RemoveCast soft-deletes the cast's rows for the date
func (s *DailyReportService) RemoveCast(ctx context.Context, storeID, castID uuid.UUID, date time.Time) error {
	affected, err := s.perfRepo.SoftDeleteByCastAndDate(ctx, storeID, castID, date)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NewNotFoundError("Report row")
	}

	s.invalidateMonth(ctx, storeID, date)
	return nil
}

func (s *DailyReportService) invalidateMonth(ctx context.Context, storeID uuid.UUID, date time.Time) {
	_ = s.cache.Delete(ctx, monthlyCacheKey(storeID, date.Year(), int(date.Month())))
}

func applyRowInput(perf *entity.CastDailyPerformance, in DailyReportRowInput) {
	perf.StartTime = in.StartTime
	perf.EndTime = in.EndTime
	perf.Overtime = in.Overtime
	perf.DrinkSubtotal = in.DrinkSubtotal
	perf.DrinkSubtotalBack = in.DrinkSubtotalBack
	perf.BottleSubtotal = in.BottleSubtotal
	perf.BottleSubtotalBack = in.BottleSubtotalBack
	perf.FoodSubtotal = in.FoodSubtotal
	perf.FoodSubtotalBack = in.FoodSubtotalBack
	perf.Bonus = in.Bonus
	perf.WelfareCost = in.WelfareCost
	perf.DailyPayment = in.DailyPayment
	perf.AbsenceDeduction = in.AbsenceDeduction
	perf.SoriDeduction = in.SoriDeduction
	perf.TardinessDeduction = in.TardinessDeduction
	perf.OtherDeductions = in.OtherDeductions
}

// recomputeDerived refreshes the snapshot columns from the input columns.
// Monthly-salaried casts have a zero hourly rate, so their time reward is
// always zero.
func recomputeDerived(perf *entity.CastDailyPerformance, hourlyRate int64) {
	perf.WorkHours = report.WorkHours(perf.StartTime, perf.EndTime, perf.Overtime)
	perf.TimeReward = report.TimeReward(perf.WorkHours, hourlyRate)

	rec := toCastRecord(perf)
	perf.TotalDeduction = report.TotalDeduction(rec)
	perf.TotalPayment = report.TotalPayment(rec)
	perf.RemainingPayment = report.RemainingPayment(rec)
}

func toCastRecord(perf *entity.CastDailyPerformance) report.CastRecord {
	return report.CastRecord{
		SalarySystem:       perf.Cast.SalarySystem,
		TimeReward:         perf.TimeReward,
		DrinkSubtotal:      perf.DrinkSubtotal,
		DrinkSubtotalBack:  perf.DrinkSubtotalBack,
		BottleSubtotal:     perf.BottleSubtotal,
		BottleSubtotalBack: perf.BottleSubtotalBack,
		FoodSubtotal:       perf.FoodSubtotal,
		FoodSubtotalBack:   perf.FoodSubtotalBack,
		Bonus:              perf.Bonus,
		DailyPayment:       perf.DailyPayment,
		AbsenceDeduction:   perf.AbsenceDeduction,
		SoriDeduction:      perf.SoriDeduction,
		TardinessDeduction: perf.TardinessDeduction,
		OtherDeductions:    perf.OtherDeductions,
	}
}

func monthlyCacheKey(storeID uuid.UUID, year, month int) string {
	return fmt.Sprintf("report:monthly:%s:%04d-%02d", storeID, year, month)
}
