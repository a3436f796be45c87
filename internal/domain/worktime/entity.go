package worktime

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification is the mutually exclusive per-day outcome.
type Classification string

const (
	// ClassHoliday marks a non-laborable holiday; the day is excluded from
	// all totals regardless of punches.
	ClassHoliday Classification = "holiday"
	// ClassAbsent marks a day covered by an approved absence.
	ClassAbsent Classification = "absent"
	// ClassNoSchedule marks a day with no applicable schedule or a
	// non-laborable weekday; excluded from accounting.
	ClassNoSchedule Classification = "no_schedule"
	// ClassIncomplete marks a laborable day whose punches do not yield both a
	// first entry and a last exit, or whose pairing was irregular.
	ClassIncomplete Classification = "incomplete"
	ClassPunctual   Classification = "punctual"
	// ClassLateUncompensated: arrived past tolerance and either compensation
	// is not allowed or the full scheduled duration was not worked.
	ClassLateUncompensated Classification = "late_uncompensated"
	// ClassLateCompensated: the full-shift gate passed and overtime covered
	// the whole tardiness; net late is zero.
	ClassLateCompensated Classification = "late_compensated"
	// ClassLatePartiallyCompensated: the full-shift gate passed but overtime
	// covered only part of the tardiness.
	ClassLatePartiallyCompensated Classification = "late_partially_compensated"
)

// Expectation is the resolved schedule for one employee-day. Entry and exit
// are minutes past the local midnight of the day; an exit beyond 1440 means
// the shift ends on the next calendar day.
type Expectation struct {
	ScheduleID          string
	ScheduleName        string
	EntryMinutes        int
	ExitMinutes         int
	ToleranceMinutes    int
	RoundingMinutes     int
	BreakMinutes        int
	CompensationAllowed bool
}

// CrossesMidnight reports whether the scheduled exit falls on the next
// calendar day.
func (e Expectation) CrossesMidnight() bool {
	return e.ExitMinutes > 24*60
}

// ExpectedDuration is the scheduled shift length in minutes, breaks included.
func (e Expectation) ExpectedDuration() int {
	return e.ExitMinutes - e.EntryMinutes
}

// Session is one (entry, exit) pair within a local day.
type Session struct {
	EntryAt time.Time
	ExitAt  time.Time
}

// Minutes is the session span, clamped at zero for out-of-order data.
func (s Session) Minutes() int {
	m := int(s.ExitAt.Sub(s.EntryAt).Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// DayOutcome is the derived result for one employee-day. It is a pure
// function of punches, schedule data, holidays and absences: re-running the
// engine over unchanged inputs yields an identical outcome. Never persisted.
type DayOutcome struct {
	Date     time.Time // local calendar date, midnight
	Expected *Expectation
	Sessions []Session

	FirstEntry *time.Time // earliest entry punch, kept even on irregular days
	LastExit   *time.Time // latest exit punch

	RawLateMinutes        int
	NetLateMinutes        int
	EarlyDepartureMinutes int

	DiurnalOvertimeMinutes          int
	NocturnalOvertimeMinutes        int
	OrdinaryNocturnalPremiumMinutes int
	NetOvertimeMinutes              int
	NetWorkedMinutes                int

	Irregularities int
	Classification Classification
	Note           string
}

// HasPunches reports whether any punch at all was recorded for the day.
func (d DayOutcome) HasPunches() bool {
	return d.FirstEntry != nil || d.LastExit != nil
}

// Countable reports whether the day participates in period totals.
func (d DayOutcome) Countable() bool {
	switch d.Classification {
	case ClassHoliday, ClassAbsent, ClassNoSchedule:
		return false
	}
	return true
}

// TardinessRecord is one late day inside a period summary.
type TardinessRecord struct {
	Date           time.Time
	ExpectedEntry  time.Time
	ActualEntry    time.Time
	RawLateMinutes int
	NetLateMinutes int
	Classification Classification
}

// AbsenceRecord is one approved absence overlapping the period.
type AbsenceRecord struct {
	DateFrom time.Time
	DateTo   time.Time
	Reason   *string
}

// PeriodSummary aggregates an inclusive local date range for one employee.
type PeriodSummary struct {
	EmployeeID string
	From       time.Time
	To         time.Time

	Days []DayOutcome

	Tardiness        []TardinessRecord
	ApprovedAbsences []AbsenceRecord
	// InferredUnexcusedAbsences lists laborable, non-holiday, non-absent days
	// with zero recorded punches. Silence is never silently dropped.
	InferredUnexcusedAbsences []time.Time

	LaborableDays int
	DaysPresent   int

	TotalNetLateMinutes   int
	EarlyDepartureCount   int
	EarlyDepartureMinutes int

	DiurnalOvertimeHours          decimal.Decimal
	NocturnalOvertimeHours        decimal.Decimal
	OrdinaryNocturnalPremiumHours decimal.Decimal
	NetWorkedHours                decimal.Decimal
}

// HoursFromMinutes converts a minute count to decimal hours rounded to two
// places, the resolution payroll consumes.
func HoursFromMinutes(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}
