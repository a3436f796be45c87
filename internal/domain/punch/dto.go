package punch

import (
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/validator"
)

type RecordPunchRequest struct {
	Type      string   `json:"type"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: entry, exit",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Type       string   `json:"type"`
	OccurredAt string   `json:"occurred_at"` // RFC3339, UTC
	LocalDate  string   `json:"local_date"`  // YYYY-MM-DD in the business zone
	LocalTime  string   `json:"local_time"`  // HH:MM in the business zone
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type ListPunchesResponse struct {
	EmployeeID string          `json:"employee_id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Punches    []PunchResponse `json:"punches"`
}
