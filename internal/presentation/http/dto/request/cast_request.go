package request

// CastRequest represents the create/update cast request body. SalarySystem 0
// is monthly (requires monthly_salary), 1 is hourly (requires hourly_wage).
type CastRequest struct {
	Name          string `json:"name" binding:"required"`
	SalarySystem  int    `json:"salary_system"`
	MonthlySalary *int64 `json:"monthly_salary"`
	HourlyWage    *int64 `json:"hourly_wage"`
	BackSetting   int    `json:"back_setting"`
}
