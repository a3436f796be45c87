package report

import (
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MonthlyWorktimeRequest struct {
	Month string `json:"month"` // 1-12
	Year  string `json:"year"`  // four digit year
}

func (r *MonthlyWorktimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if validator.IsEmpty(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is required",
		})
	} else if !validator.IsNumeric(r.Year) || len(r.Year) != 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four digit number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlyWorktimeRow is one employee's aggregated month.
type MonthlyWorktimeRow struct {
	EmployeeID                string          `json:"employee_id"`
	FullName                  string          `json:"full_name"`
	Position                  *string         `json:"position,omitempty"`
	LaborableDays             int             `json:"laborable_days"`
	DaysPresent               int             `json:"days_present"`
	InferredUnexcusedAbsences int             `json:"inferred_unexcused_absences"`
	TardinessCount            int             `json:"tardiness_count"`
	TotalNetLateMinutes       int             `json:"total_net_late_minutes"`
	EarlyDepartureCount       int             `json:"early_departure_count"`
	WorkedHours               decimal.Decimal `json:"worked_hours"`
	DiurnalOvertimeHours      decimal.Decimal `json:"diurnal_overtime_hours"`
	NocturnalOvertimeHours    decimal.Decimal `json:"nocturnal_overtime_hours"`
	NocturnalPremiumHours     decimal.Decimal `json:"nocturnal_premium_hours"`
}

type MonthlyWorktimeResponse struct {
	Month int                  `json:"month"`
	Year  int                  `json:"year"`
	From  string               `json:"from"`
	To    string               `json:"to"`
	Rows  []MonthlyWorktimeRow `json:"rows"`
}
