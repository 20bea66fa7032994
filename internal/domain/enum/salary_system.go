package enum

// SalarySystem determines how a cast member is paid
type SalarySystem int

const (
	// SalarySystemMonthly pays a fixed monthly amount; the daily time reward
	// is always zero.
	SalarySystemMonthly SalarySystem = 0
	// SalarySystemHourly pays by worked time at the cast's hourly wage.
	SalarySystemHourly SalarySystem = 1
)

// IsValid checks if the salary system value is valid
func (s SalarySystem) IsValid() bool {
	return s == SalarySystemMonthly || s == SalarySystemHourly
}

func (s SalarySystem) String() string {
	switch s {
	case SalarySystemMonthly:
		return "monthly"
	case SalarySystemHourly:
		return "hourly"
	default:
		return "unknown"
	}
}

// BackSetting controls whether a cast member earns sales-back commissions
type BackSetting int

const (
	BackSettingDisabled BackSetting = 0
	BackSettingEnabled  BackSetting = 1
)

// IsValid checks if the back setting value is valid
func (b BackSetting) IsValid() bool {
	return b == BackSettingDisabled || b == BackSettingEnabled
}
