package service

import (
	"context"
	"testing"
	"time"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	"github.com/clubdesk/clubdesk-api/internal/domain/enum"
	"github.com/clubdesk/clubdesk-api/internal/infrastructure/cache"
	"github.com/clubdesk/clubdesk-api/pkg/apperror"
	"github.com/clubdesk/clubdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

type fakeCastRepo struct {
	casts map[uuid.UUID]*entity.Cast
}

func newFakeCastRepo() *fakeCastRepo {
	return &fakeCastRepo{casts: make(map[uuid.UUID]*entity.Cast)}
}

func (r *fakeCastRepo) Create(ctx context.Context, cast *entity.Cast) error {
	if cast.ID == uuid.Nil {
		cast.ID = uuid.New()
	}
	r.casts[cast.ID] = cast
	return nil
}

func (r *fakeCastRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cast, error) {
	return r.casts[id], nil
}

func (r *fakeCastRepo) Update(ctx context.Context, cast *entity.Cast) error {
	r.casts[cast.ID] = cast
	return nil
}

func (r *fakeCastRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.casts, id)
	return nil
}

func (r *fakeCastRepo) ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.Cast, int64, error) {
	var out []entity.Cast
	for _, c := range r.casts {
		if c.StoreID == storeID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

type fakeCastPerfRepo struct {
	castRepo *fakeCastRepo
	rows     map[uuid.UUID]*entity.CastDailyPerformance
}

func newFakeCastPerfRepo(castRepo *fakeCastRepo) *fakeCastPerfRepo {
	return &fakeCastPerfRepo{
		castRepo: castRepo,
		rows:     make(map[uuid.UUID]*entity.CastDailyPerformance),
	}
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func (r *fakeCastPerfRepo) Create(ctx context.Context, perf *entity.CastDailyPerformance) error {
	if perf.ID == uuid.Nil {
		perf.ID = uuid.New()
	}
	cp := *perf
	r.rows[perf.ID] = &cp
	return nil
}

func (r *fakeCastPerfRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CastDailyPerformance, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *fakeCastPerfRepo) Update(ctx context.Context, perf *entity.CastDailyPerformance) error {
	cp := *perf
	r.rows[perf.ID] = &cp
	return nil
}

func (r *fakeCastPerfRepo) ListByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) ([]entity.CastDailyPerformance, error) {
	var out []entity.CastDailyPerformance
	for _, row := range r.rows {
		if row.StoreID == storeID && sameDay(row.PerformanceDate, date) {
			cp := *row
			if cast, ok := r.castRepo.casts[cp.CastID]; ok {
				cp.Cast = *cast
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *fakeCastPerfRepo) ListByStoreAndRange(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]entity.CastDailyPerformance, error) {
	var out []entity.CastDailyPerformance
	for _, row := range r.rows {
		if row.StoreID == storeID && !row.PerformanceDate.Before(from) && row.PerformanceDate.Before(to) {
			cp := *row
			if cast, ok := r.castRepo.casts[cp.CastID]; ok {
				cp.Cast = *cast
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *fakeCastPerfRepo) SoftDeleteByCastAndDate(ctx context.Context, storeID, castID uuid.UUID, date time.Time) (int64, error) {
	var affected int64
	for id, row := range r.rows {
		if row.StoreID == storeID && row.CastID == castID && sameDay(row.PerformanceDate, date) {
			delete(r.rows, id)
			affected++
		}
	}
	return affected, nil
}

func int64Ptr(v int64) *int64 { return &v }

func setupDailyReport(t *testing.T) (*DailyReportService, uuid.UUID, *entity.Cast) {
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
	svc := NewDailyReportService(castRepo, perfRepo, cache.NewNoop())
	return svc, storeID, cast
}

func TestSaveDailyReport_CreateComputesDerived(t *testing.T) {
	svc, storeID, cast := setupDailyReport(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	rows, err := svc.SaveDailyReport(context.Background(), storeID, date, []DailyReportRowInput{{
		CastID:             cast.ID,
		StartTime:          "18:00",
		EndTime:            "02:00",
		Overtime:           30,
		DrinkSubtotal:      10000,
		DrinkSubtotalBack:  1000,
		BottleSubtotal:     30000,
		BottleSubtotalBack: 3000,
		Bonus:              2000,
		DailyPayment:       5000,
		AbsenceDeduction:   1000,
		OtherDeductions:    500,
	}})
	if err != nil {
		t.Fatalf("SaveDailyReport() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.WorkHours != "08:30" {
		t.Errorf("WorkHours = %q, want 08:30", row.WorkHours)
	}
	if row.TimeReward != 17000 {
		t.Errorf("TimeReward = %d, want 17000", row.TimeReward)
	}
	// 17000 + 1000 + 3000 + 2000
	if row.TotalPayment != 23000 {
		t.Errorf("TotalPayment = %d, want 23000", row.TotalPayment)
	}
	if row.RemainingPayment != 18000 {
		t.Errorf("RemainingPayment = %d, want 18000", row.RemainingPayment)
	}
	if row.TotalDeduction != 1500 {
		t.Errorf("TotalDeduction = %d, want 1500", row.TotalDeduction)
	}
	if row.CastName != "Rina" {
		t.Errorf("CastName = %q, want Rina", row.CastName)
	}
	if row.HourlyRate != 2000 {
		t.Errorf("HourlyRate = %d, want 2000", row.HourlyRate)
	}
}

func TestSaveDailyReport_UpdateExistingRow(t *testing.T) {
	svc, storeID, cast := setupDailyReport(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	rows, err := svc.SaveDailyReport(context.Background(), storeID, date, []DailyReportRowInput{{
		CastID:    cast.ID,
		StartTime: "20:00",
		EndTime:   "23:00",
	}})
	if err != nil {
		t.Fatalf("initial save: %v", err)
	}
	id := rows[0].ID

	rows, err = svc.SaveDailyReport(context.Background(), storeID, date, []DailyReportRowInput{{
		ID:        &id,
		CastID:    cast.ID,
		StartTime: "20:00",
		EndTime:   "01:00",
	}})
	if err != nil {
		t.Fatalf("update save: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows after update, want 1", len(rows))
	}
	if rows[0].ID != id {
		t.Errorf("update created a new row: id %s != %s", rows[0].ID, id)
	}
	if rows[0].WorkHours != "05:00" {
		t.Errorf("WorkHours = %q, want 05:00", rows[0].WorkHours)
	}
	if rows[0].TimeReward != 10000 {
		t.Errorf("TimeReward = %d, want 10000", rows[0].TimeReward)
	}
}

func TestSaveDailyReport_UnknownCast(t *testing.T) {
	svc, storeID, _ := setupDailyReport(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.SaveDailyReport(context.Background(), storeID, date, []DailyReportRowInput{{
		CastID: uuid.New(),
	}})
	if err == nil {
		t.Fatal("expected error for unknown cast, got nil")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("error code = %d, want 404", appErr.Code)
	}
}

func TestSaveDailyReport_MonthlyCastGetsNoTimeReward(t *testing.T) {
	storeID := uuid.New()
	castRepo := newFakeCastRepo()
	cast := &entity.Cast{
		StoreID:       storeID,
		Name:          "Aoi",
		SalarySystem:  enum.SalarySystemMonthly,
		MonthlySalary: int64Ptr(300000),
	}
	if err := castRepo.Create(context.Background(), cast); err != nil {
		t.Fatalf("seed cast: %v", err)
	}
	svc := NewDailyReportService(castRepo, newFakeCastPerfRepo(castRepo), cache.NewNoop())
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	rows, err := svc.SaveDailyReport(context.Background(), storeID, date, []DailyReportRowInput{{
		CastID:    cast.ID,
		StartTime: "19:00",
		EndTime:   "01:00",
	}})
	if err != nil {
		t.Fatalf("SaveDailyReport() error = %v", err)
	}
	if rows[0].WorkHours != "06:00" {
		t.Errorf("WorkHours = %q, want 06:00", rows[0].WorkHours)
	}
	if rows[0].TimeReward != 0 {
		t.Errorf("TimeReward = %d, want 0 for monthly-salaried cast", rows[0].TimeReward)
	}
}

func TestRemoveCast(t *testing.T) {
	svc, storeID, cast := setupDailyReport(t)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	if err := svc.RemoveCast(context.Background(), storeID, cast.ID, date); err == nil {
		t.Fatal("expected not-found error when no rows exist")
	}

	if _, err := svc.SaveDailyReport(context.Background(), storeID, date, []DailyReportRowInput{{
		CastID: cast.ID,
	}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.RemoveCast(context.Background(), storeID, cast.ID, date); err != nil {
		t.Fatalf("RemoveCast() error = %v", err)
	}

	rows, err := svc.GetDailyReport(context.Background(), storeID, date)
	if err != nil {
		t.Fatalf("GetDailyReport() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows after removal, want 0", len(rows))
	}
}
