package request

import "github.com/google/uuid"

// DailyReportRowRequest is one row of the daily report save body. A missing
// id creates a new row; a present id updates the existing one.
type DailyReportRowRequest struct {
	ID     *uuid.UUID `json:"id"`
	CastID uuid.UUID  `json:"cast_id" binding:"required"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Overtime  int    `json:"overtime"`

	DrinkSubtotal      int64 `json:"drink_subtotal"`
	DrinkSubtotalBack  int64 `json:"drink_subtotal_back"`
	BottleSubtotal     int64 `json:"bottle_subtotal"`
	BottleSubtotalBack int64 `json:"bottle_subtotal_back"`
	FoodSubtotal       int64 `json:"food_subtotal"`
	FoodSubtotalBack   int64 `json:"food_subtotal_back"`
	Bonus              int64 `json:"bonus"`

	WelfareCost  int64 `json:"welfare_cost"`
	DailyPayment int64 `json:"daily_payment"`

	AbsenceDeduction   int64 `json:"absence_deduction"`
	SoriDeduction      int64 `json:"sori_deduction"`
	TardinessDeduction int64 `json:"tardiness_deduction"`
	OtherDeductions    int64 `json:"other_deductions"`
}

// SaveDailyReportRequest represents the daily report save body
type SaveDailyReportRequest struct {
	Rows []DailyReportRowRequest `json:"rows" binding:"required"`
}

// StoreReportRequest represents the store daily report save body
type StoreReportRequest struct {
	CashSales             int64 `json:"cash_sales"`
	CardSales             int64 `json:"card_sales"`
	Receivables           int64 `json:"receivables"`
	ReceivablesCollection int64 `json:"receivables_collection"`
	MiscExpenses          int64 `json:"misc_expenses"`
	OtherExpenses         int64 `json:"other_expenses"`
	SetCount              int64 `json:"set_count"`
	CustomerCount         int64 `json:"customer_count"`
	ActualCash            int64 `json:"actual_cash"`
	CoinCarryover         int64 `json:"coin_carryover"`
	TransferredCash       int64 `json:"transferred_cash"`
}
