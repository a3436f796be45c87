package worktime

import (
	"context"
	"fmt"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/absence"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/holiday"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
)

// ComputePeriod implements worktime.Engine. The range is inclusive local
// dates; every partial result lives in memory until the final return, so a
// cancellation between day iterations leaves no external state behind.
func (e *EngineImpl) ComputePeriod(ctx context.Context, employeeID string, from, to time.Time) (worktime.PeriodSummary, error) {
	fromDay := e.localDate(from)
	toDay := e.localDate(to)
	if fromDay.After(toDay) {
		return worktime.PeriodSummary{}, worktime.ErrInvalidDateRange
	}

	holidays, err := e.holidays.ListBetween(ctx, fromDay, toDay)
	if err != nil {
		return worktime.PeriodSummary{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidayByDate := make(map[string]*holiday.Holiday, len(holidays))
	for i := range holidays {
		holidayByDate[holidays[i].Date.Format("2006-01-02")] = &holidays[i]
	}

	absences, err := e.absences.ListApprovedOverlapping(ctx, employeeID, fromDay, toDay)
	if err != nil {
		return worktime.PeriodSummary{}, fmt.Errorf("failed to list absences: %w", err)
	}

	summary := worktime.PeriodSummary{
		EmployeeID:                employeeID,
		From:                      fromDay,
		To:                        toDay,
		Days:                      []worktime.DayOutcome{},
		Tardiness:                 []worktime.TardinessRecord{},
		ApprovedAbsences:          make([]worktime.AbsenceRecord, 0, len(absences)),
		InferredUnexcusedAbsences: []time.Time{},
	}
	for _, a := range absences {
		summary.ApprovedAbsences = append(summary.ApprovedAbsences, worktime.AbsenceRecord{
			DateFrom: a.DateFrom,
			DateTo:   a.DateTo,
			Reason:   a.Reason,
		})
	}

	var diurnal, nocturnal, premium, worked int

	for day := fromDay; !day.After(toDay); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return worktime.PeriodSummary{}, err
		}

		hol := holidayByDate[day.Format("2006-01-02")]
		outcome, err := e.computeDay(ctx, employeeID, day, hol, coveringAbsence(absences, day))
		if err != nil {
			return worktime.PeriodSummary{}, err
		}
		summary.Days = append(summary.Days, outcome)

		if !outcome.Countable() {
			continue
		}
		summary.LaborableDays++

		if !outcome.HasPunches() {
			// A laborable, non-holiday, non-absent day with zero punches is
			// an inferred unexcused absence, reported as its own signal.
			summary.InferredUnexcusedAbsences = append(summary.InferredUnexcusedAbsences, day)
			continue
		}
		summary.DaysPresent++

		switch outcome.Classification {
		case worktime.ClassLateUncompensated, worktime.ClassLateCompensated, worktime.ClassLatePartiallyCompensated:
			y, m, d := day.Date()
			summary.Tardiness = append(summary.Tardiness, worktime.TardinessRecord{
				Date:           day,
				ExpectedEntry:  e.tz.At(y, m, d, outcome.Expected.EntryMinutes),
				ActualEntry:    *outcome.FirstEntry,
				RawLateMinutes: outcome.RawLateMinutes,
				NetLateMinutes: outcome.NetLateMinutes,
				Classification: outcome.Classification,
			})
		}

		summary.TotalNetLateMinutes += outcome.NetLateMinutes
		if outcome.EarlyDepartureMinutes > 0 {
			summary.EarlyDepartureCount++
			summary.EarlyDepartureMinutes += outcome.EarlyDepartureMinutes
		}

		diurnal += outcome.DiurnalOvertimeMinutes
		nocturnal += outcome.NocturnalOvertimeMinutes
		premium += outcome.OrdinaryNocturnalPremiumMinutes
		worked += outcome.NetWorkedMinutes
	}

	summary.DiurnalOvertimeHours = worktime.HoursFromMinutes(diurnal)
	summary.NocturnalOvertimeHours = worktime.HoursFromMinutes(nocturnal)
	summary.OrdinaryNocturnalPremiumHours = worktime.HoursFromMinutes(premium)
	summary.NetWorkedHours = worktime.HoursFromMinutes(worked)

	return summary, nil
}

func coveringAbsence(absences []absence.Absence, day time.Time) *absence.Absence {
	for i := range absences {
		if absences[i].Covers(day) {
			return &absences[i]
		}
	}
	return nil
}
