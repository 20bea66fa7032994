package report

import (
	"math"

	"github.com/clubdesk/clubdesk-api/internal/domain/enum"
)

// Totals are the cast-side sums feeding the store summary.
type Totals struct {
	CastSales            int64 // drink + bottle + food subtotals
	CastSalary           int64 // time wages + backs + bonuses
	CastDailyPayment     int64 // daily payments to hourly casts
	EmployeeDailyPayment int64 // daily payments to monthly-salaried staff
}

// StoreInputs are the manually entered store-level figures for a period.
// For a month they are the column-wise sums of the daily rows.
type StoreInputs struct {
	CashSales     int64
	CardSales     int64
	Receivables   int64
	MiscExpenses  int64
	OtherExpenses int64
	SetCount      int64
	CustomerCount int64
}

// Summary is the full derived KPI set for a store day or month.
type Summary struct {
	Totals
	TotalSales              int64
	LaborCostRatio          float64
	GrossProfit             int64
	GrossProfitMargin       float64
	OperatingProfit         int64
	OperatingProfitMargin   float64
	AverageSpendPerCustomer int64
}

// SumCasts accumulates per-record contributions over a set of cast records.
// Addition is commutative, so the result does not depend on record order.
func SumCasts(records []CastRecord) Totals {
	var t Totals
	for _, r := range records {
		t.CastSales += r.DrinkSubtotal + r.BottleSubtotal + r.FoodSubtotal
		t.CastSalary += r.TimeReward + r.DrinkSubtotalBack + r.BottleSubtotalBack + r.FoodSubtotalBack + r.Bonus
		switch r.SalarySystem {
		case enum.SalarySystemHourly:
			t.CastDailyPayment += r.DailyPayment
		case enum.SalarySystemMonthly:
			t.EmployeeDailyPayment += r.DailyPayment
		}
	}
	return t
}

// Summarize derives the store KPIs from manual inputs and cast totals.
//
// The labor cost ratio is cast salary over cast-generated sales. The source
// material also contains a variant dividing by total sales; the cast-sales
// denominator is the rule of record here (see summary_test.go, which pins
// both down). Average spend per customer divides total sales, not cast
// sales, by the customer count.
func Summarize(in StoreInputs, t Totals) Summary {
	totalSales := in.CashSales + in.CardSales + in.Receivables
	grossProfit := totalSales - in.MiscExpenses
	operatingProfit := grossProfit - (in.OtherExpenses + t.CastSalary)

	var avgSpend int64
	if in.CustomerCount > 0 {
		avgSpend = int64(math.Round(float64(totalSales) / float64(in.CustomerCount)))
	}

	return Summary{
		Totals:                  t,
		TotalSales:              totalSales,
		LaborCostRatio:          RoundPercent(t.CastSalary, t.CastSales),
		GrossProfit:             grossProfit,
		GrossProfitMargin:       RoundPercent(grossProfit, totalSales),
		OperatingProfit:         operatingProfit,
		OperatingProfitMargin:   RoundPercent(operatingProfit, totalSales),
		AverageSpendPerCustomer: avgSpend,
	}
}

// RoundPercent returns num/den as a percentage rounded to one decimal place
// (round(x*1000)/10). A zero or negative denominator yields 0, never an
// error or NaN.
func RoundPercent(num, den int64) float64 {
	if den <= 0 {
		return 0
	}
	return math.Round(float64(num)/float64(den)*1000) / 10
}
