package service

import (
	"context"
	"time"

	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	"github.com/clubdesk/clubdesk-api/internal/domain/report"
	"github.com/clubdesk/clubdesk-api/internal/domain/repository"
	"github.com/clubdesk/clubdesk-api/internal/infrastructure/cache"
	"github.com/google/uuid"
)

// StoreReportService handles the store-level daily cash-flow report and the
// monthly roll-up. Both use the same KPI formulas; the monthly figures are
// computed over all rows in the month, never by averaging daily ratios.
type StoreReportService struct {
	perfRepo      repository.CastPerformanceRepository
	storePerfRepo repository.StorePerformanceRepository
	cache         cache.ReportCache
	cacheTTL      time.Duration
}

// NewStoreReportService creates a new store report service
func NewStoreReportService(
	perfRepo repository.CastPerformanceRepository,
	storePerfRepo repository.StorePerformanceRepository,
	reportCache cache.ReportCache,
	cacheTTL time.Duration,
) *StoreReportService {
	return &StoreReportService{
		perfRepo:      perfRepo,
		storePerfRepo: storePerfRepo,
		cache:         reportCache,
		cacheTTL:      cacheTTL,
	}
}

// GetDaily returns the store's report for one date. When no row exists yet a
// zeroed, unpersisted report is returned so the screen always has something
// to show; KPIs still reflect that day's cast rows.
func (s *StoreReportService) GetDaily(ctx context.Context, storeID uuid.UUID, date time.Time) (*entity.StoreDailyPerformance, error) {
	perf, err := s.storePerfRepo.GetByStoreAndDate(ctx, storeID, date)
	if err != nil {
		return nil, err
	}
	if perf == nil {
		perf = &entity.StoreDailyPerformance{
			StoreID:         storeID,
			PerformanceDate: date,
		}
	}

	totals, err := s.castTotalsForDate(ctx, storeID, date)
	if err != nil {
		return nil, err
	}

	applySummary(perf, report.Summarize(storeInputs(perf), totals))
	return perf, nil
}

// StoreReportInput carries the manually entered store-level figures
type StoreReportInput struct {
	CashSales             int64
	CardSales             int64
	Receivables           int64
	ReceivablesCollection int64
	MiscExpenses          int64
	OtherExpenses         int64
	SetCount              int64
	CustomerCount         int64
	ActualCash            int64
	CoinCarryover         int64
	TransferredCash       int64
}

// SaveDaily upserts the store's report for one date. The row is looked up by
// store and date first, so repeated saves keep a single non-deleted row per
// day.
func (s *StoreReportService) SaveDaily(ctx context.Context, storeID uuid.UUID, date time.Time, input *StoreReportInput) (*entity.StoreDailyPerformance, error) {
	perf, err := s.storePerfRepo.GetByStoreAndDate(ctx, storeID, date)
	if err != nil {
		return nil, err
	}

	creating := perf == nil
	if creating {
		perf = &entity.StoreDailyPerformance{
			StoreID:         storeID,
			PerformanceDate: date,
		}
	}

	perf.CashSales = input.CashSales
	perf.CardSales = input.CardSales
	perf.Receivables = input.Receivables
	perf.ReceivablesCollection = input.ReceivablesCollection
	perf.MiscExpenses = input.MiscExpenses
	perf.OtherExpenses = input.OtherExpenses
	perf.SetCount = input.SetCount
	perf.CustomerCount = input.CustomerCount
	perf.ActualCash = input.ActualCash
	perf.CoinCarryover = input.CoinCarryover
	perf.TransferredCash = input.TransferredCash

	totals, err := s.castTotalsForDate(ctx, storeID, date)
	if err != nil {
		return nil, err
	}
	applySummary(perf, report.Summarize(storeInputs(perf), totals))

	if creating {
		err = s.storePerfRepo.Create(ctx, perf)
	} else {
		err = s.storePerfRepo.Update(ctx, perf)
	}
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, monthlyCacheKey(storeID, date.Year(), int(date.Month())))
	return perf, nil
}

// MonthlyReport is the KPI set for one calendar month
type MonthlyReport struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	CastSales            int64 `json:"cast_sales"`
	CastSalary           int64 `json:"cast_salary"`
	CastDailyPayment     int64 `json:"cast_daily_payment"`
	EmployeeDailyPayment int64 `json:"employee_daily_payment"`

	TotalSales              int64   `json:"total_sales"`
	LaborCostRatio          float64 `json:"labor_cost_ratio"`
	GrossProfit             int64   `json:"gross_profit"`
	GrossProfitMargin       float64 `json:"gross_profit_margin"`
	OperatingProfit         int64   `json:"operating_profit"`
	OperatingProfitMargin   float64 `json:"operating_profit_margin"`
	AverageSpendPerCustomer int64   `json:"average_spend_per_customer"`

	SetCount      int64 `json:"set_count"`
	CustomerCount int64 `json:"customer_count"`
}

// GetMonthly computes the month's KPI set over all cast rows and store rows
// with a date in [monthStart, nextMonthStart). Results are cached until a
// save for that month invalidates them or the TTL runs out.
func (s *StoreReportService) GetMonthly(ctx context.Context, storeID uuid.UUID, year, month int) (*MonthlyReport, error) {
	key := monthlyCacheKey(storeID, year, month)

	var cached MonthlyReport
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	perfs, err := s.perfRepo.ListByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}
	records := make([]report.CastRecord, 0, len(perfs))
	for i := range perfs {
		recomputeDerived(&perfs[i], perfs[i].Cast.HourlyRate())
		records = append(records, toCastRecord(&perfs[i]))
	}
	totals := report.SumCasts(records)

	storePerfs, err := s.storePerfRepo.ListByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}
	var in report.StoreInputs
	for i := range storePerfs {
		row := storeInputs(&storePerfs[i])
		in.CashSales += row.CashSales
		in.CardSales += row.CardSales
		in.Receivables += row.Receivables
		in.MiscExpenses += row.MiscExpenses
		in.OtherExpenses += row.OtherExpenses
		in.SetCount += row.SetCount
		in.CustomerCount += row.CustomerCount
	}

	summary := report.Summarize(in, totals)
	result := &MonthlyReport{
		Year:                    year,
		Month:                   month,
		CastSales:               summary.CastSales,
		CastSalary:              summary.CastSalary,
		CastDailyPayment:        summary.CastDailyPayment,
		EmployeeDailyPayment:    summary.EmployeeDailyPayment,
		TotalSales:              summary.TotalSales,
		LaborCostRatio:          summary.LaborCostRatio,
		GrossProfit:             summary.GrossProfit,
		GrossProfitMargin:       summary.GrossProfitMargin,
		OperatingProfit:         summary.OperatingProfit,
		OperatingProfitMargin:   summary.OperatingProfitMargin,
		AverageSpendPerCustomer: summary.AverageSpendPerCustomer,
		SetCount:                in.SetCount,
		CustomerCount:           in.CustomerCount,
	}

	_ = s.cache.Set(ctx, key, result, s.cacheTTL)
	return result, nil
}

func (s *StoreReportService) castTotalsForDate(ctx context.Context, storeID uuid.UUID, date time.Time) (report.Totals, error) {
	perfs, err := s.perfRepo.ListByStoreAndDate(ctx, storeID, date)
	if err != nil {
		return report.Totals{}, err
	}

	records := make([]report.CastRecord, 0, len(perfs))
	for i := range perfs {
		recomputeDerived(&perfs[i], perfs[i].Cast.HourlyRate())
		records = append(records, toCastRecord(&perfs[i]))
	}
	return report.SumCasts(records), nil
}

func storeInputs(perf *entity.StoreDailyPerformance) report.StoreInputs {
	return report.StoreInputs{
		CashSales:     perf.CashSales,
		CardSales:     perf.CardSales,
		Receivables:   perf.Receivables,
		MiscExpenses:  perf.MiscExpenses,
		OtherExpenses: perf.OtherExpenses,
		SetCount:      perf.SetCount,
		CustomerCount: perf.CustomerCount,
	}
}

func applySummary(perf *entity.StoreDailyPerformance, s report.Summary) {
	perf.TotalSales = s.TotalSales
	perf.CastSales = s.CastSales
	perf.CastSalary = s.CastSalary
	perf.CastDailyPayment = s.CastDailyPayment
	perf.EmployeeDailyPayment = s.EmployeeDailyPayment
	perf.LaborCostRatio = s.LaborCostRatio
	perf.GrossProfit = s.GrossProfit
	perf.GrossProfitMargin = s.GrossProfitMargin
	perf.OperatingProfit = s.OperatingProfit
	perf.OperatingProfitMargin = s.OperatingProfitMargin
	perf.AverageSpendPerCustomer = s.AverageSpendPerCustomer
}
