package worktime

import (
	"fmt"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
)

// classifyDay turns one day's context into its outcome. The states are
// mutually exclusive and checked in precedence order: approved absence,
// non-laborable holiday, no schedule, then punch-derived states.
func (e *EngineImpl) classifyDay(dc dayContext) worktime.DayOutcome {
	out := worktime.DayOutcome{Date: dc.date, Sessions: []worktime.Session{}}

	if dc.absent != nil {
		out.Classification = worktime.ClassAbsent
		out.Note = "approved absence"
		return out
	}

	if dc.holiday != nil && !dc.holiday.Laborable {
		out.Classification = worktime.ClassHoliday
		out.Note = dc.holiday.Name
		return out
	}

	if dc.expected == nil {
		out.Classification = worktime.ClassNoSchedule
		return out
	}
	out.Expected = dc.expected

	if dc.holiday != nil {
		out.Note = fmt.Sprintf("laborable holiday: %s", dc.holiday.Name)
	}

	ds := buildSessions(dc.punches)
	out.Sessions = ds.Sessions
	out.FirstEntry = ds.FirstEntry
	out.LastExit = ds.LastExit
	out.Irregularities = ds.Irregularities

	exp := *dc.expected
	y, m, d := dc.date.Date()

	// The raw figure stays unrounded; rounding applies only to the
	// payroll-facing net lateness.
	var billedLate int
	if ds.FirstEntry != nil {
		feMin := e.tz.MinutesSinceLocalMidnight(y, m, d, *ds.FirstEntry)
		out.RawLateMinutes = max(0, feMin-exp.EntryMinutes)
		billedLate = roundUpTo(out.RawLateMinutes, exp.RoundingMinutes)
	}
	if ds.LastExit != nil {
		leMin := e.tz.MinutesSinceLocalMidnight(y, m, d, *ds.LastExit)
		out.EarlyDepartureMinutes = max(0, exp.ExitMinutes-leMin)
	}

	if ds.FirstEntry == nil || ds.LastExit == nil {
		// Without both endpoints nothing beyond the raw figures above can be
		// derived. Tardiness and early departure stay reported.
		out.Classification = worktime.ClassIncomplete
		out.NetLateMinutes = billedLate
		out.NetWorkedMinutes = netWorked(ds.Sessions, exp.BreakMinutes)
		return out
	}

	feMin := e.tz.MinutesSinceLocalMidnight(y, m, d, *ds.FirstEntry)
	leMin := e.tz.MinutesSinceLocalMidnight(y, m, d, *ds.LastExit)

	split := splitOvertime(exp, feMin, leMin)
	out.DiurnalOvertimeMinutes = split.Diurnal
	out.NocturnalOvertimeMinutes = split.Nocturnal
	out.OrdinaryNocturnalPremiumMinutes = split.Premium
	out.NetOvertimeMinutes = split.Total
	out.NetWorkedMinutes = netWorked(ds.Sessions, exp.BreakMinutes)

	late := feMin > exp.EntryMinutes+exp.ToleranceMinutes

	switch {
	case !late && ds.Irregularities == 0:
		out.Classification = worktime.ClassPunctual
	case !late:
		out.Classification = worktime.ClassIncomplete
	case !exp.CompensationAllowed:
		out.Classification = worktime.ClassLateUncompensated
		out.NetLateMinutes = billedLate
	default:
		e.applyCompensation(&out, exp, feMin, leMin, split, billedLate)
	}

	return out
}

// applyCompensation nets tardiness against overtime. The gate is "make up the
// full scheduled shift", not a minute-for-minute swap: only once the worked
// span covers the expected duration does minute netting apply.
func (e *EngineImpl) applyCompensation(out *worktime.DayOutcome, exp worktime.Expectation, feMin, leMin int, split overtimeSplit, billedLate int) {
	worked := max(0, leMin-feMin)

	if worked < exp.ExpectedDuration() {
		out.Classification = worktime.ClassLateUncompensated
		out.NetLateMinutes = billedLate
		return
	}

	if split.Total >= billedLate {
		out.Classification = worktime.ClassLateCompensated
		out.NetLateMinutes = 0
		out.NetOvertimeMinutes = split.Total - billedLate
	} else {
		out.Classification = worktime.ClassLatePartiallyCompensated
		out.NetLateMinutes = billedLate - split.Total
		out.NetOvertimeMinutes = 0
	}

	// Netted minutes are consumed from the diurnal share first; only the
	// remainder reduces the nocturnal share.
	consumed := split.Total - out.NetOvertimeMinutes
	fromDiurnal := min(consumed, split.Diurnal)
	out.DiurnalOvertimeMinutes = split.Diurnal - fromDiurnal
	out.NocturnalOvertimeMinutes = split.Nocturnal - (consumed - fromDiurnal)
}

// netWorked sums paired session spans minus the scheduled break. Breaks are
// subtracted only here; lateness, overtime and premium all use raw
// first-entry/last-exit instants.
func netWorked(sessions []worktime.Session, breakMinutes int) int {
	if len(sessions) == 0 {
		return 0
	}
	total := 0
	for _, s := range sessions {
		total += s.Minutes()
	}
	return max(0, total-breakMinutes)
}

// roundUpTo rounds n up to the next multiple of step; step <= 1 is identity.
func roundUpTo(n, step int) int {
	if step <= 1 || n <= 0 {
		return n
	}
	return ((n + step - 1) / step) * step
}
