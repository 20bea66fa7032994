package report

import "testing"

func TestCastRecordDerivedTotals(t *testing.T) {
	r := CastRecord{
		TimeReward:         12750,
		DrinkSubtotalBack:  1000,
		BottleSubtotalBack: 2000,
		FoodSubtotalBack:   500,
		Bonus:              3000,
		DailyPayment:       10000,
		AbsenceDeduction:   1000,
		SoriDeduction:      500,
		TardinessDeduction: 300,
		OtherDeductions:    200,
	}

	if got := TotalDeduction(r); got != 2000 {
		t.Fatalf("TotalDeduction = %d, expected 2000", got)
	}
	if got := TotalPayment(r); got != 19250 {
		t.Fatalf("TotalPayment = %d, expected 19250", got)
	}
	if got := RemainingPayment(r); got != 9250 {
		t.Fatalf("RemainingPayment = %d, expected 9250", got)
	}
}

func TestRemainingPayment_CanGoNegative(t *testing.T) {
	r := CastRecord{TimeReward: 5000, DailyPayment: 8000}
	if got := RemainingPayment(r); got != -3000 {
		t.Fatalf("RemainingPayment = %d, expected -3000", got)
	}
}

func TestTotalPayment_ZeroRecord(t *testing.T) {
	var r CastRecord
	if got := TotalPayment(r); got != 0 {
		t.Fatalf("TotalPayment of zero record = %d, expected 0", got)
	}
	if got := TotalDeduction(r); got != 0 {
		t.Fatalf("TotalDeduction of zero record = %d, expected 0", got)
	}
}
