package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CastDailyPerformance is one cast member's attendance and commission record
// for one calendar day. Amounts are integer yen.
//
// WorkHours, TimeReward, TotalPayment, RemainingPayment and TotalDeduction
// are derived snapshots: they are recomputed from the input columns on every
// save and again on every read, never trusted as authoritative.
type CastDailyPerformance struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CastID          uuid.UUID `gorm:"type:uuid;not null;index:idx_cast_performance_date" json:"cast_id"`
	StoreID         uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`
	PerformanceDate time.Time `gorm:"type:date;not null;index:idx_cast_performance_date" json:"performance_date"`

	// Attendance inputs
	StartTime string `gorm:"size:5" json:"start_time"`  // HH:MM, 24h
	EndTime   string `gorm:"size:5" json:"end_time"`    // HH:MM, 24h
	Overtime  int    `gorm:"default:0" json:"overtime"` // minutes, may be negative

	// Attendance derived
	WorkHours  string `gorm:"size:8" json:"work_hours"`
	TimeReward int64  `gorm:"default:0" json:"time_reward"`

	// Sales and commission inputs
	DrinkSubtotal      int64 `gorm:"default:0" json:"drink_subtotal"`
	DrinkSubtotalBack  int64 `gorm:"default:0" json:"drink_subtotal_back"`
	BottleSubtotal     int64 `gorm:"default:0" json:"bottle_subtotal"`
	BottleSubtotalBack int64 `gorm:"default:0" json:"bottle_subtotal_back"`
	FoodSubtotal       int64 `gorm:"default:0" json:"food_subtotal"`
	FoodSubtotalBack   int64 `gorm:"default:0" json:"food_subtotal_back"`
	Bonus              int64 `gorm:"default:0" json:"bonus"`

	// Daily payment inputs
	WelfareCost  int64 `gorm:"default:0" json:"welfare_cost"`
	DailyPayment int64 `gorm:"default:0" json:"daily_payment"`

	// Payment derived
	TotalPayment     int64 `gorm:"default:0" json:"total_payment"`
	RemainingPayment int64 `gorm:"default:0" json:"remaining_payment"`

	// Deduction inputs
	AbsenceDeduction   int64 `gorm:"default:0" json:"absence_deduction"`
	SoriDeduction      int64 `gorm:"default:0" json:"sori_deduction"`
	TardinessDeduction int64 `gorm:"default:0" json:"tardiness_deduction"`
	OtherDeductions    int64 `gorm:"default:0" json:"other_deductions"`

	// Deduction derived
	TotalDeduction int64 `gorm:"default:0" json:"total_deduction"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Cast  Cast  `gorm:"foreignKey:CastID" json:"-"`
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new performance record
func (p *CastDailyPerformance) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CastDailyPerformance model
func (CastDailyPerformance) TableName() string {
	return "cast_daily_performances"
}

// StoreDailyPerformance is the store-level cash flow record for one calendar
// day. At most one non-deleted row exists per (store, date); the service
// layer enforces this with upsert-by-lookup.
//
// Columns from TotalSales down are derived snapshots recomputed on save.
type StoreDailyPerformance struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StoreID         uuid.UUID `gorm:"type:uuid;not null;index:idx_store_performance_date" json:"store_id"`
	PerformanceDate time.Time `gorm:"type:date;not null;index:idx_store_performance_date" json:"performance_date"`

	// Income inputs
	CashSales             int64 `gorm:"default:0" json:"cash_sales"`
	CardSales             int64 `gorm:"default:0" json:"card_sales"`
	Receivables           int64 `gorm:"default:0" json:"receivables"`
	ReceivablesCollection int64 `gorm:"default:0" json:"receivables_collection"`

	// Expense inputs
	MiscExpenses  int64 `gorm:"default:0" json:"misc_expenses"`
	OtherExpenses int64 `gorm:"default:0" json:"other_expenses"`

	// Customer inputs
	SetCount      int64 `gorm:"default:0" json:"set_count"`
	CustomerCount int64 `gorm:"default:0" json:"customer_count"`

	// Cash-on-hand inputs
	ActualCash      int64 `gorm:"default:0" json:"actual_cash"`
	CoinCarryover   int64 `gorm:"default:0" json:"coin_carryover"`
	TransferredCash int64 `gorm:"default:0" json:"transferred_cash"`

	// Derived snapshot
	TotalSales              int64   `gorm:"default:0" json:"total_sales"`
	CastSales               int64   `gorm:"default:0" json:"cast_sales"`
	CastSalary              int64   `gorm:"default:0" json:"cast_salary"`
	CastDailyPayment        int64   `gorm:"default:0" json:"cast_daily_payment"`
	EmployeeDailyPayment    int64   `gorm:"default:0" json:"employee_daily_payment"`
	LaborCostRatio          float64 `gorm:"default:0" json:"labor_cost_ratio"`
	GrossProfit             int64   `gorm:"default:0" json:"gross_profit"`
	GrossProfitMargin       float64 `gorm:"default:0" json:"gross_profit_margin"`
	OperatingProfit         int64   `gorm:"default:0" json:"operating_profit"`
	OperatingProfitMargin   float64 `gorm:"default:0" json:"operating_profit_margin"`
	AverageSpendPerCustomer int64   `gorm:"default:0" json:"average_spend_per_customer"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new store performance record
func (p *StoreDailyPerformance) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreDailyPerformance model
func (StoreDailyPerformance) TableName() string {
	return "store_daily_performances"
}
