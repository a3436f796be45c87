package worktime

import "errors"

var (
	// ErrInvalidDateRange is returned when from is after to. This is the only
	// input the engine rejects; missing schedules, punches, holidays and
	// absences are all valid silent states.
	ErrInvalidDateRange = errors.New("from date must not be after to date")
)
