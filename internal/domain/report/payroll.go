package report

import "github.com/clubdesk/clubdesk-api/internal/domain/enum"

// CastRecord carries the per-cast per-day fields the calculations need.
// Amounts are integer yen; the caller is responsible for filtering out
// soft-deleted records before handing them in.
type CastRecord struct {
	SalarySystem       enum.SalarySystem
	TimeReward         int64
	DrinkSubtotal      int64
	DrinkSubtotalBack  int64
	BottleSubtotal     int64
	BottleSubtotalBack int64
	FoodSubtotal       int64
	FoodSubtotalBack   int64
	Bonus              int64
	DailyPayment       int64
	AbsenceDeduction   int64
	SoriDeduction      int64
	TardinessDeduction int64
	OtherDeductions    int64
}

// TotalDeduction sums the four deduction categories of one record.
func TotalDeduction(r CastRecord) int64 {
	return r.AbsenceDeduction + r.SoriDeduction + r.TardinessDeduction + r.OtherDeductions
}

// TotalPayment is the gross amount payable to the cast for the day: time
// wage plus all commission backs plus bonus.
func TotalPayment(r CastRecord) int64 {
	return r.TimeReward + r.DrinkSubtotalBack + r.BottleSubtotalBack + r.FoodSubtotalBack + r.Bonus
}

// RemainingPayment is what is still owed after the daily cash payment.
func RemainingPayment(r CastRecord) int64 {
	return TotalPayment(r) - r.DailyPayment
}
