package worktime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
)

// isoWeekday maps time.Weekday (Sunday=0) to ISO numbering (Monday=1).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// resolveExpectation returns the applicable expectation for an employee-day,
// or nil when the day carries no expectation: no effective assignment, no day
// detail for the weekday, a non-laborable weekday, or a malformed laborable
// detail lacking entry/exit times. None of these are errors; the result is
// consumed downstream as "excluded from accounting".
func (e *EngineImpl) resolveExpectation(ctx context.Context, employeeID string, day time.Time) (*worktime.Expectation, error) {
	assignment, err := e.schedules.GetEffectiveAssignment(ctx, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get effective assignment: %w", err)
	}
	if assignment == nil {
		return nil, nil
	}

	detail, err := e.schedules.GetDayDetail(ctx, assignment.ScheduleID, isoWeekday(day))
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule day detail: %w", err)
	}
	if detail == nil || !detail.Laborable {
		return nil, nil
	}

	if detail.EntryMinutes == nil || detail.ExitMinutes == nil {
		// Data-quality problem, not a computation failure. The day is treated
		// as carrying no expectation; the cron scan reports these rows.
		slog.Warn("laborable schedule day detail missing entry or exit time",
			"schedule_id", detail.ScheduleID, "weekday", detail.Weekday)
		return nil, nil
	}

	entry := *detail.EntryMinutes
	exit := *detail.ExitMinutes
	// An exit at or before the entry means the shift ends on the next
	// calendar day.
	if exit <= entry {
		exit += 24 * 60
	}

	compensation := detail.CompensationDefault
	if detail.CompensationAllowed != nil {
		compensation = *detail.CompensationAllowed
	}

	return &worktime.Expectation{
		ScheduleID:          detail.ScheduleID,
		ScheduleName:        detail.ScheduleName,
		EntryMinutes:        entry,
		ExitMinutes:         exit,
		ToleranceMinutes:    detail.ToleranceMinutes,
		RoundingMinutes:     detail.RoundingMinutes,
		BreakMinutes:        detail.BreakMinutes,
		CompensationAllowed: compensation,
	}, nil
}
