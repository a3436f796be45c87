package schedule

import "time"

// Assignment links an employee to a schedule for a date range. The write path
// keeps at most one assignment effective per employee per date; readers must
// still tolerate overlaps by preferring the most recently started one.
type Assignment struct {
	ID         string
	EmployeeID string
	ScheduleID string
	ValidFrom  time.Time
	ValidTo    *time.Time // nil = open-ended
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DayDetail describes the expectation for one weekday of a schedule.
// Entry and exit are minutes past local midnight; an exit at or before the
// entry means the shift ends on the next calendar day.
type DayDetail struct {
	ID                  string
	ScheduleID          string
	Weekday             int // 1=Monday, ..., 7=Sunday
	Laborable           bool
	EntryMinutes        *int
	ExitMinutes         *int
	ToleranceMinutes    int
	RoundingMinutes     int
	BreakMinutes        int
	CompensationAllowed *bool // nil falls back to the schedule default

	// Populated from the schedules join on read.
	ScheduleName        string
	CompensationDefault bool
}
