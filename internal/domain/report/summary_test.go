package report

import (
	"testing"

	"github.com/clubdesk/clubdesk-api/internal/domain/enum"
)

func TestSumCasts(t *testing.T) {
	records := []CastRecord{
		{
			SalarySystem:       enum.SalarySystemHourly,
			TimeReward:         12750,
			DrinkSubtotal:      30000,
			DrinkSubtotalBack:  3000,
			BottleSubtotal:     50000,
			BottleSubtotalBack: 5000,
			FoodSubtotal:       10000,
			FoodSubtotalBack:   1000,
			Bonus:              2000,
			DailyPayment:       10000,
		},
		{
			SalarySystem:  enum.SalarySystemMonthly,
			TimeReward:    0,
			DrinkSubtotal: 20000,
			DailyPayment:  5000,
		},
	}

	totals := SumCasts(records)
	if totals.CastSales != 110000 {
		t.Fatalf("CastSales = %d, expected 110000", totals.CastSales)
	}
	if totals.CastSalary != 23750 {
		t.Fatalf("CastSalary = %d, expected 23750", totals.CastSalary)
	}
	if totals.CastDailyPayment != 10000 {
		t.Fatalf("CastDailyPayment = %d, expected 10000", totals.CastDailyPayment)
	}
	if totals.EmployeeDailyPayment != 5000 {
		t.Fatalf("EmployeeDailyPayment = %d, expected 5000", totals.EmployeeDailyPayment)
	}
}

func TestSumCasts_OrderIndependent(t *testing.T) {
	records := []CastRecord{
		{SalarySystem: enum.SalarySystemHourly, TimeReward: 100, DrinkSubtotal: 1000, DailyPayment: 50},
		{SalarySystem: enum.SalarySystemMonthly, TimeReward: 200, BottleSubtotal: 2000, DailyPayment: 70},
		{SalarySystem: enum.SalarySystemHourly, TimeReward: 300, FoodSubtotal: 3000, Bonus: 10},
	}
	reversed := []CastRecord{records[2], records[1], records[0]}

	if SumCasts(records) != SumCasts(reversed) {
		t.Fatalf("SumCasts depends on record order: %+v vs %+v", SumCasts(records), SumCasts(reversed))
	}
}

func TestSummarize_StoreDayScenario(t *testing.T) {
	in := StoreInputs{
		CashSales:     100000,
		CardSales:     50000,
		Receivables:   0,
		MiscExpenses:  20000,
		OtherExpenses: 10000,
		CustomerCount: 10,
	}
	totals := Totals{CastSales: 80000, CastSalary: 40000}

	s := Summarize(in, totals)
	if s.TotalSales != 150000 {
		t.Fatalf("TotalSales = %d, expected 150000", s.TotalSales)
	}
	if s.GrossProfit != 130000 {
		t.Fatalf("GrossProfit = %d, expected 130000", s.GrossProfit)
	}
	if s.GrossProfitMargin != 86.7 {
		t.Fatalf("GrossProfitMargin = %v, expected 86.7", s.GrossProfitMargin)
	}
	if s.OperatingProfit != 80000 {
		t.Fatalf("OperatingProfit = %d, expected 80000", s.OperatingProfit)
	}
	if s.OperatingProfitMargin != 53.3 {
		t.Fatalf("OperatingProfitMargin = %v, expected 53.3", s.OperatingProfitMargin)
	}
	if s.LaborCostRatio != 50.0 {
		t.Fatalf("LaborCostRatio = %v, expected 50.0", s.LaborCostRatio)
	}
	if s.AverageSpendPerCustomer != 15000 {
		t.Fatalf("AverageSpendPerCustomer = %d, expected 15000", s.AverageSpendPerCustomer)
	}
}

// The upstream product history carried two labor cost ratio formulas: one
// divided cast salary by total sales, the other by cast sales. Cast sales is
// the denominator of record; this test exists so a regression back to the
// total-sales variant (26.7 here) fails loudly instead of slipping through.
func TestLaborCostRatio_UsesCastSalesDenominator(t *testing.T) {
	in := StoreInputs{CashSales: 100000, CardSales: 50000}
	totals := Totals{CastSales: 80000, CastSalary: 40000}

	s := Summarize(in, totals)
	if s.LaborCostRatio == 26.7 {
		t.Fatalf("LaborCostRatio used the total-sales denominator variant")
	}
	if s.LaborCostRatio != 50.0 {
		t.Fatalf("LaborCostRatio = %v, expected 50.0", s.LaborCostRatio)
	}
}

// Average spend likewise had a cast-sales variant upstream; total sales is
// canonical (8000 would indicate the cast-sales variant).
func TestAverageSpend_UsesTotalSales(t *testing.T) {
	in := StoreInputs{CashSales: 100000, CardSales: 50000, CustomerCount: 10}
	totals := Totals{CastSales: 80000}

	s := Summarize(in, totals)
	if s.AverageSpendPerCustomer == 8000 {
		t.Fatalf("AverageSpendPerCustomer used the cast-sales variant")
	}
	if s.AverageSpendPerCustomer != 15000 {
		t.Fatalf("AverageSpendPerCustomer = %d, expected 15000", s.AverageSpendPerCustomer)
	}
}

func TestSummarize_ZeroDenominators(t *testing.T) {
	s := Summarize(StoreInputs{MiscExpenses: 5000, OtherExpenses: 3000}, Totals{CastSalary: 40000})

	if s.LaborCostRatio != 0 {
		t.Fatalf("LaborCostRatio with zero cast sales = %v, expected 0", s.LaborCostRatio)
	}
	if s.GrossProfitMargin != 0 {
		t.Fatalf("GrossProfitMargin with zero total sales = %v, expected 0", s.GrossProfitMargin)
	}
	if s.OperatingProfitMargin != 0 {
		t.Fatalf("OperatingProfitMargin with zero total sales = %v, expected 0", s.OperatingProfitMargin)
	}
	if s.AverageSpendPerCustomer != 0 {
		t.Fatalf("AverageSpendPerCustomer with zero customers = %d, expected 0", s.AverageSpendPerCustomer)
	}
	// Profit amounts still come through, only the ratios are guarded.
	if s.GrossProfit != -5000 {
		t.Fatalf("GrossProfit = %d, expected -5000", s.GrossProfit)
	}
	if s.OperatingProfit != -48000 {
		t.Fatalf("OperatingProfit = %d, expected -48000", s.OperatingProfit)
	}
}

func TestRoundPercent(t *testing.T) {
	cases := []struct {
		num      int64
		den      int64
		expected float64
	}{
		{40000, 80000, 50.0},
		{130000, 150000, 86.7},
		{80000, 150000, 53.3},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 0, 0},
		{0, 100, 0},
		{-5000, 10000, -50.0},
	}
	for _, tc := range cases {
		if got := RoundPercent(tc.num, tc.den); got != tc.expected {
			t.Fatalf("RoundPercent(%d, %d) = %v, expected %v", tc.num, tc.den, got, tc.expected)
		}
	}
}

// Full cast-day scenario: 18:00 to 02:00 with 30 minutes overtime at 1500
// yen/hour is an 8.5 hour shift worth 12750 yen.
func TestCastDayEndToEnd(t *testing.T) {
	workHours := WorkHours("18:00", "02:00", 30)
	if workHours != "08:30" {
		t.Fatalf("WorkHours = %q, expected 08:30", workHours)
	}
	reward := TimeReward(workHours, 1500)
	if reward != 12750 {
		t.Fatalf("TimeReward = %d, expected 12750", reward)
	}

	r := CastRecord{
		SalarySystem: enum.SalarySystemHourly,
		TimeReward:   reward,
		DailyPayment: 10000,
	}
	if got := TotalPayment(r); got != 12750 {
		t.Fatalf("TotalPayment = %d, expected 12750", got)
	}
	if got := RemainingPayment(r); got != 2750 {
		t.Fatalf("RemainingPayment = %d, expected 2750", got)
	}
}
