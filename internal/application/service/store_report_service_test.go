package service

import (
	"context"
	"testing"
	"time"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	"github.com/clubdesk/clubdesk-api/internal/domain/enum"
	"github.com/clubdesk/clubdesk-api/internal/infrastructure/cache"
	"github.com/google/uuid"
)

type fakeStorePerfRepo struct {
	rows map[uuid.UUID]*entity.StoreDailyPerformance
}

func newFakeStorePerfRepo() *fakeStorePerfRepo {
	return &fakeStorePerfRepo{rows: make(map[uuid.UUID]*entity.StoreDailyPerformance)}
}

func (r *fakeStorePerfRepo) Create(ctx context.Context, perf *entity.StoreDailyPerformance) error {
	if perf.ID == uuid.Nil {
		perf.ID = uuid.New()
	}
	cp := *perf
	r.rows[perf.ID] = &cp
	return nil
}

func (r *fakeStorePerfRepo) Update(ctx context.Context, perf *entity.StoreDailyPerformance) error {
	cp := *perf
	r.rows[perf.ID] = &cp
	return nil
}

func (r *fakeStorePerfRepo) GetByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*entity.StoreDailyPerformance, error) {
	for _, row := range r.rows {
		if row.StoreID == storeID && sameDay(row.PerformanceDate, date) {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStorePerfRepo) ListByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]entity.StoreDailyPerformance, error) {
	var out []entity.StoreDailyPerformance
	for _, row := range r.rows {
		if row.StoreID == storeID && !row.PerformanceDate.Before(from) && row.PerformanceDate.Before(to) {
			out = append(out, *row)
		}
	}
	return out, nil
}

func setupStoreReport(t *testing.T) (*StoreReportService, *fakeCastPerfRepo, *fakeStorePerfRepo, uuid.UUID, *entity.Cast) {
	t.Helper()
	storeID := uuid.New()
	castRepo := newFakeCastRepo()
	cast := &entity.Cast{
		StoreID:      storeID,
		Name:         "Rina",
		SalarySystem: enum.SalarySystemHourly,
		HourlyWage:   int64Ptr(2000),
	}
	if err := castRepo.Create(context.Background(), cast); err != nil {
		t.Fatalf("seed cast: %v", err)
	}
	perfRepo := newFakeCastPerfRepo(castRepo)
	storePerfRepo := newFakeStorePerfRepo()
	svc := NewStoreReportService(perfRepo, storePerfRepo, cache.NewNoop(), time.Minute)
	return svc, perfRepo, storePerfRepo, storeID, cast
}

func TestGetDaily_DefaultsToZeroedReport(t *testing.T) {
	svc, _, _, storeID, _ := setupStoreReport(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	got, err := svc.GetDaily(context.Background(), storeID, date)
	if err != nil {
		t.Fatalf("GetDaily() error = %v", err)
	}
	if got.ID != uuid.Nil {
		t.Errorf("default report should not be persisted, got id %s", got.ID)
	}
	if got.TotalSales != 0 || got.LaborCostRatio != 0 || got.AverageSpendPerCustomer != 0 {
		t.Errorf("zeroed report has non-zero KPIs: %+v", got)
	}
}

func TestSaveDaily_ComputesKPISnapshot(t *testing.T) {
	svc, perfRepo, _, storeID, cast := setupStoreReport(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	// one cast row: sales 130000, salary 17000+9000+14000 = 40000
	perfRepo.Create(context.Background(), &entity.CastDailyPerformance{
		CastID:             cast.ID,
		StoreID:            storeID,
		PerformanceDate:    date,
		StartTime:          "18:00",
		EndTime:            "02:00",
		Overtime:           30,
		DrinkSubtotal:      20000,
		BottleSubtotal:     80000,
		FoodSubtotal:       30000,
		DrinkSubtotalBack:  4000,
		BottleSubtotalBack: 5000,
		Bonus:              14000,
		DailyPayment:       10000,
	})

	got, err := svc.SaveDaily(context.Background(), storeID, date, &StoreReportInput{
		CashSales:     100000,
		CardSales:     40000,
		Receivables:   10000,
		MiscExpenses:  20000,
		OtherExpenses: 30000,
		SetCount:      12,
		CustomerCount: 18,
	})
	if err != nil {
		t.Fatalf("SaveDaily() error = %v", err)
	}

	if got.TotalSales != 150000 {
		t.Errorf("TotalSales = %d, want 150000", got.TotalSales)
	}
	if got.CastSales != 130000 {
		t.Errorf("CastSales = %d, want 130000", got.CastSales)
	}
	if got.CastSalary != 40000 {
		t.Errorf("CastSalary = %d, want 40000", got.CastSalary)
	}
	// 40000 / 130000 -> 30.8
	if got.LaborCostRatio != 30.8 {
		t.Errorf("LaborCostRatio = %v, want 30.8", got.LaborCostRatio)
	}
	if got.GrossProfit != 130000 {
		t.Errorf("GrossProfit = %d, want 130000", got.GrossProfit)
	}
	// (130000 - 70000) / 150000 -> 40.0
	if got.OperatingProfit != 60000 {
		t.Errorf("OperatingProfit = %d, want 60000", got.OperatingProfit)
	}
	if got.OperatingProfitMargin != 40.0 {
		t.Errorf("OperatingProfitMargin = %v, want 40.0", got.OperatingProfitMargin)
	}
	// 150000 / 18 -> 8333
	if got.AverageSpendPerCustomer != 8333 {
		t.Errorf("AverageSpendPerCustomer = %d, want 8333", got.AverageSpendPerCustomer)
	}
}

func TestSaveDaily_UpsertsByStoreAndDate(t *testing.T) {
	svc, _, storePerfRepo, storeID, _ := setupStoreReport(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	first, err := svc.SaveDaily(context.Background(), storeID, date, &StoreReportInput{CashSales: 1000})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := svc.SaveDaily(context.Background(), storeID, date, &StoreReportInput{CashSales: 2000})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("second save created a new row: %s != %s", second.ID, first.ID)
	}
	if len(storePerfRepo.rows) != 1 {
		t.Errorf("got %d rows for the day, want 1", len(storePerfRepo.rows))
	}
	if second.CashSales != 2000 {
		t.Errorf("CashSales = %d, want 2000", second.CashSales)
	}
}

func TestGetMonthly_SumsRowsBeforeDeriving(t *testing.T) {
	svc, perfRepo, storePerfRepo, storeID, cast := setupStoreReport(t)

	// two days in April, one outside the month
	days := []struct {
		date      time.Time
		cash      int64
		customers int64
		drink     int64
		back      int64
	}{
		{time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), 100000, 10, 50000, 5000},
		{time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), 200000, 20, 50000, 5000},
		{time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 999999, 99, 99999, 9999},
	}
	for _, d := range days {
		perfRepo.Create(context.Background(), &entity.CastDailyPerformance{
			CastID:            cast.ID,
			StoreID:           storeID,
			PerformanceDate:   d.date,
			DrinkSubtotal:     d.drink,
			DrinkSubtotalBack: d.back,
		})
		storePerfRepo.Create(context.Background(), &entity.StoreDailyPerformance{
			StoreID:         storeID,
			PerformanceDate: d.date,
			CashSales:       d.cash,
			CustomerCount:   d.customers,
		})
	}

	got, err := svc.GetMonthly(context.Background(), storeID, 2025, 4)
	if err != nil {
		t.Fatalf("GetMonthly() error = %v", err)
	}

	if got.TotalSales != 300000 {
		t.Errorf("TotalSales = %d, want 300000", got.TotalSales)
	}
	if got.CastSales != 100000 {
		t.Errorf("CastSales = %d, want 100000", got.CastSales)
	}
	if got.CastSalary != 10000 {
		t.Errorf("CastSalary = %d, want 10000", got.CastSalary)
	}
	// 10000 / 100000 -> 10.0
	if got.LaborCostRatio != 10.0 {
		t.Errorf("LaborCostRatio = %v, want 10.0", got.LaborCostRatio)
	}
	if got.CustomerCount != 30 {
		t.Errorf("CustomerCount = %d, want 30", got.CustomerCount)
	}
	// 300000 / 30 -> 10000
	if got.AverageSpendPerCustomer != 10000 {
		t.Errorf("AverageSpendPerCustomer = %d, want 10000", got.AverageSpendPerCustomer)
	}
}
