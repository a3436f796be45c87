package worktime

import (
	"context"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/absence"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/holiday"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/punch"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/schedule"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/timezone"
)

const testEmployeeID = "emp-1"

// testTZ is the business zone every engine test runs in. Bogota has no DST,
// so the zone-database and fixed-offset paths agree.
var testTZ = timezone.New("America/Bogota", -5*3600)

type fakeScheduleRepo struct {
	assignment *schedule.Assignment
	details    map[int]*schedule.DayDetail
}

func (f *fakeScheduleRepo) GetEffectiveAssignment(ctx context.Context, employeeID string, date time.Time) (*schedule.Assignment, error) {
	return f.assignment, nil
}

func (f *fakeScheduleRepo) GetDayDetail(ctx context.Context, scheduleID string, weekday int) (*schedule.DayDetail, error) {
	return f.details[weekday], nil
}

func (f *fakeScheduleRepo) ListMalformedDayDetails(ctx context.Context) ([]schedule.DayDetail, error) {
	return nil, nil
}

type fakePunchRepo struct {
	punches []punch.Punch
}

func (f *fakePunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) ListBetween(ctx context.Context, employeeID string, fromUTC, toUTC time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.EmployeeID != employeeID {
			continue
		}
		if p.OccurredAt.Before(fromUTC) || !p.OccurredAt.Before(toUTC) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.Date.Before(from) || h.Date.After(to) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

type fakeAbsenceRepo struct {
	absences []absence.Absence
}

func (f *fakeAbsenceRepo) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]absence.Absence, error) {
	var out []absence.Absence
	for _, a := range f.absences {
		if a.EmployeeID != employeeID || a.Status != absence.StatusApproved {
			continue
		}
		if a.DateTo.Before(from) || a.DateFrom.After(to) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type engineFixture struct {
	engine    *EngineImpl
	schedules *fakeScheduleRepo
	punches   *fakePunchRepo
	holidays  *fakeHolidayRepo
	absences  *fakeAbsenceRepo
}

func newEngineFixture() *engineFixture {
	f := &engineFixture{
		schedules: &fakeScheduleRepo{details: map[int]*schedule.DayDetail{}},
		punches:   &fakePunchRepo{},
		holidays:  &fakeHolidayRepo{},
		absences:  &fakeAbsenceRepo{},
	}
	f.engine = NewEngine(testTZ, f.schedules, f.punches, f.holidays, f.absences).(*EngineImpl)
	return f
}

// withWeekdaySchedule installs a Monday-to-Friday schedule with the given
// entry/exit minutes for the fixture's single assignment.
func (f *engineFixture) withWeekdaySchedule(entry, exit, tolerance, rounding, breakMin int, compensation bool) {
	f.schedules.assignment = &schedule.Assignment{
		ID:         "assign-1",
		EmployeeID: testEmployeeID,
		ScheduleID: "sched-1",
		ValidFrom:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for wd := 1; wd <= 5; wd++ {
		e, x := entry, exit
		f.schedules.details[wd] = &schedule.DayDetail{
			ID:                  "detail-1",
			ScheduleID:          "sched-1",
			Weekday:             wd,
			Laborable:           true,
			EntryMinutes:        &e,
			ExitMinutes:         &x,
			ToleranceMinutes:    tolerance,
			RoundingMinutes:     rounding,
			BreakMinutes:        breakMin,
			ScheduleName:        "Test Schedule",
			CompensationDefault: compensation,
		}
	}
}

// punchAt records a punch at the given local wall-clock time.
func (f *engineFixture) punchAt(typ punch.Type, year int, month time.Month, day, hour, minute int) {
	f.punches.punches = append(f.punches.punches, punch.Punch{
		EmployeeID: testEmployeeID,
		Type:       typ,
		OccurredAt: time.Date(year, month, day, hour, minute, 0, 0, testTZ.Location()).UTC(),
	})
}

func localDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, testTZ.Location())
}

func computeDayOutcome(f *engineFixture, day time.Time) (worktime.DayOutcome, error) {
	return f.engine.ComputeDay(context.Background(), testEmployeeID, day)
}
