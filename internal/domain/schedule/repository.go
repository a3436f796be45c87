package schedule

import (
	"context"
	"time"
)

// Repository defines read access to schedule data. Schedule CRUD lives in a
// separate administration service; this backend only consumes assignments and
// day details. All methods return (nil, nil) when no row matches: a missing
// schedule is a valid silent state, not an error.
type Repository interface {
	// GetEffectiveAssignment returns the assignment covering the given local
	// date, preferring the most recently started one when ranges overlap.
	GetEffectiveAssignment(ctx context.Context, employeeID string, date time.Time) (*Assignment, error)

	// GetDayDetail returns the day detail for (scheduleID, ISO weekday) with
	// the schedule-level compensation default populated.
	GetDayDetail(ctx context.Context, scheduleID string, weekday int) (*DayDetail, error)

	// ListMalformedDayDetails returns laborable day details missing an entry
	// or exit time. Used by the data-quality cron job.
	ListMalformedDayDetails(ctx context.Context) ([]DayDetail, error)
}
