package entity

import (
	"time"

	"github.com/clubdesk/clubdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cast represents a staff member (hostess/host) whose attendance and
// commissions are tracked per day. Exactly one of MonthlySalary/HourlyWage
// is set, depending on SalarySystem.
type Cast struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	StoreID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"store_id"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	SalarySystem  enum.SalarySystem `gorm:"not null;default:1" json:"salary_system"`
	MonthlySalary *int64            `json:"monthly_salary,omitempty"`
	HourlyWage    *int64            `json:"hourly_wage,omitempty"`
	BackSetting   enum.BackSetting  `gorm:"not null;default:0" json:"back_setting"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Store        Store                  `gorm:"foreignKey:StoreID" json:"-"`
	Performances []CastDailyPerformance `gorm:"foreignKey:CastID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cast
func (c *Cast) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cast model
func (Cast) TableName() string {
	return "casts"
}

// HourlyRate returns the hourly wage, or 0 for monthly-salaried casts.
func (c *Cast) HourlyRate() int64 {
	if c.HourlyWage == nil {
		return 0
	}
	return *c.HourlyWage
}
