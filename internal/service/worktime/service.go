package worktime

import (
	"context"
	"fmt"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/absence"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/holiday"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/punch"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/schedule"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/timezone"
)

// overnightGraceWindow is how far past the scheduled exit of a
// midnight-crossing shift punches are still attributed to the shift's start
// day. Six hours covers any realistic overtime without swallowing the next
// evening's entry punch.
const overnightGraceWindow = 6 * time.Hour

type EngineImpl struct {
	tz        *timezone.Normalizer
	schedules schedule.Repository
	punches   punch.Repository
	holidays  holiday.Repository
	absences  absence.Repository
}

func NewEngine(
	tz *timezone.Normalizer,
	scheduleRepo schedule.Repository,
	punchRepo punch.Repository,
	holidayRepo holiday.Repository,
	absenceRepo absence.Repository,
) worktime.Engine {
	return &EngineImpl{
		tz:        tz,
		schedules: scheduleRepo,
		punches:   punchRepo,
		holidays:  holidayRepo,
		absences:  absenceRepo,
	}
}

// dayContext carries everything the classifier needs for one employee-day.
// Once built, classification is a pure function of it.
type dayContext struct {
	date     time.Time // local midnight
	expected *worktime.Expectation
	punches  []punch.Punch
	holiday  *holiday.Holiday
	absent   *absence.Absence
}

// localDate rebuilds an arbitrary input date as midnight in the business zone.
func (e *EngineImpl) localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.tz.Location())
}

// ComputeDay implements worktime.Engine.
func (e *EngineImpl) ComputeDay(ctx context.Context, employeeID string, date time.Time) (worktime.DayOutcome, error) {
	day := e.localDate(date)

	holidays, err := e.holidays.ListBetween(ctx, day, day)
	if err != nil {
		return worktime.DayOutcome{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	var hol *holiday.Holiday
	if len(holidays) > 0 {
		hol = &holidays[0]
	}

	absences, err := e.absences.ListApprovedOverlapping(ctx, employeeID, day, day)
	if err != nil {
		return worktime.DayOutcome{}, fmt.Errorf("failed to list absences: %w", err)
	}
	var abs *absence.Absence
	if len(absences) > 0 {
		abs = &absences[0]
	}

	return e.computeDay(ctx, employeeID, day, hol, abs)
}

// computeDay assembles the day context and classifies it. Absence and
// non-laborable holidays short-circuit before any punch or schedule read.
func (e *EngineImpl) computeDay(ctx context.Context, employeeID string, day time.Time, hol *holiday.Holiday, abs *absence.Absence) (worktime.DayOutcome, error) {
	dc := dayContext{date: day, holiday: hol, absent: abs}

	if abs != nil {
		return e.classifyDay(dc), nil
	}
	if hol != nil && !hol.Laborable {
		return e.classifyDay(dc), nil
	}

	expected, err := e.resolveExpectation(ctx, employeeID, day)
	if err != nil {
		return worktime.DayOutcome{}, err
	}
	dc.expected = expected
	if expected == nil {
		return e.classifyDay(dc), nil
	}

	y, m, d := day.Date()
	windowStart, windowEnd := e.tz.DayBounds(y, m, d)
	if expected.CrossesMidnight() {
		shiftEnd := e.tz.At(y, m, d, expected.ExitMinutes).Add(overnightGraceWindow)
		if shiftEnd.After(windowEnd) {
			windowEnd = shiftEnd
		}
	}

	// If the previous day's shift crossed midnight, its exit punches land in
	// this morning and were already attributed to that day. The window opens
	// after them, matching the end-side extension, but never past this day's
	// own scheduled entry.
	prev := day.AddDate(0, 0, -1)
	prevExpected, err := e.resolveExpectation(ctx, employeeID, prev)
	if err != nil {
		return worktime.DayOutcome{}, err
	}
	if prevExpected != nil && prevExpected.CrossesMidnight() {
		py, pm, pd := prev.Date()
		carried := e.tz.At(py, pm, pd, prevExpected.ExitMinutes).Add(overnightGraceWindow)
		if entry := e.tz.At(y, m, d, expected.EntryMinutes); carried.After(entry) {
			carried = entry
		}
		if carried.After(windowStart) {
			windowStart = carried
		}
	}

	punches, err := e.punches.ListBetween(ctx, employeeID, windowStart, windowEnd)
	if err != nil {
		return worktime.DayOutcome{}, fmt.Errorf("failed to list punches: %w", err)
	}
	dc.punches = punches

	return e.classifyDay(dc), nil
}
