package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/schedule"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepositoryImpl{db: db}
}

// GetEffectiveAssignment implements schedule.Repository.
// When several assignments cover the same date the most recent valid_from wins.
func (r *scheduleRepositoryImpl) GetEffectiveAssignment(ctx context.Context, employeeID string, date time.Time) (*schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, schedule_id, valid_from, valid_to, created_at
		FROM schedule_assignments
		WHERE employee_id = $1
		  AND valid_from <= $2
		  AND COALESCE(valid_to, DATE '9999-12-31') >= $2
		ORDER BY valid_from DESC, created_at DESC
		LIMIT 1
	`

	var a schedule.Assignment
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.ScheduleID, &a.ValidFrom, &a.ValidTo, &a.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get effective schedule assignment: %w", err)
	}

	return &a, nil
}

// GetDayDetail implements schedule.Repository.
// Entry/exit TIME columns are converted to minutes past midnight in SQL so the
// engine never touches the column type.
func (r *scheduleRepositoryImpl) GetDayDetail(ctx context.Context, scheduleID string, weekday int) (*schedule.DayDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.schedule_id, d.weekday, d.laborable,
			   (EXTRACT(HOUR FROM d.entry_time) * 60 + EXTRACT(MINUTE FROM d.entry_time))::int,
			   (EXTRACT(HOUR FROM d.exit_time) * 60 + EXTRACT(MINUTE FROM d.exit_time))::int,
			   d.tolerance_minutes, d.rounding_minutes, d.break_minutes,
			   d.compensation_allowed,
			   s.name, s.compensation_default
		FROM schedule_day_details d
		JOIN schedules s ON s.id = d.schedule_id
		WHERE d.schedule_id = $1 AND d.weekday = $2
	`

	var dd schedule.DayDetail
	err := q.QueryRow(ctx, query, scheduleID, weekday).Scan(
		&dd.ID, &dd.ScheduleID, &dd.Weekday, &dd.Laborable,
		&dd.EntryMinutes, &dd.ExitMinutes,
		&dd.ToleranceMinutes, &dd.RoundingMinutes, &dd.BreakMinutes,
		&dd.CompensationAllowed,
		&dd.ScheduleName, &dd.CompensationDefault,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get schedule day detail: %w", err)
	}

	return &dd, nil
}

// ListMalformedDayDetails implements schedule.Repository.
// A laborable day detail without both endpoints cannot be classified and is
// reported by the data quality scan.
func (r *scheduleRepositoryImpl) ListMalformedDayDetails(ctx context.Context) ([]schedule.DayDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.schedule_id, d.weekday, d.laborable,
			   (EXTRACT(HOUR FROM d.entry_time) * 60 + EXTRACT(MINUTE FROM d.entry_time))::int,
			   (EXTRACT(HOUR FROM d.exit_time) * 60 + EXTRACT(MINUTE FROM d.exit_time))::int,
			   d.tolerance_minutes, d.rounding_minutes, d.break_minutes,
			   d.compensation_allowed,
			   s.name, s.compensation_default
		FROM schedule_day_details d
		JOIN schedules s ON s.id = d.schedule_id
		WHERE d.laborable = true
		  AND (d.entry_time IS NULL OR d.exit_time IS NULL)
		ORDER BY s.name, d.weekday
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list malformed schedule day details: %w", err)
	}
	defer rows.Close()

	var details []schedule.DayDetail
	for rows.Next() {
		var dd schedule.DayDetail
		if err := rows.Scan(
			&dd.ID, &dd.ScheduleID, &dd.Weekday, &dd.Laborable,
			&dd.EntryMinutes, &dd.ExitMinutes,
			&dd.ToleranceMinutes, &dd.RoundingMinutes, &dd.BreakMinutes,
			&dd.CompensationAllowed,
			&dd.ScheduleName, &dd.CompensationDefault,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule day detail: %w", err)
		}
		details = append(details, dd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule day details: %w", err)
	}

	return details, nil
}
