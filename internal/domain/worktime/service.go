package worktime

import (
	"context"
	"time"
)

// Engine computes payroll-relevant facts from already-validated inputs. It is
// synchronous, side-effect free and request-scoped: callers needing a
// consistent snapshot across concurrent corrections must take it themselves
// before invoking the engine.
type Engine interface {
	// ComputeDay classifies a single employee-day.
	ComputeDay(ctx context.Context, employeeID string, date time.Time) (DayOutcome, error)

	// ComputePeriod aggregates an inclusive local date range. Returns
	// ErrInvalidDateRange when from is after to; otherwise always a
	// best-effort, internally consistent summary.
	ComputePeriod(ctx context.Context, employeeID string, from, to time.Time) (PeriodSummary, error)
}

// QueryService is the HTTP-facing read surface over the engine. It verifies
// the requested employee belongs to the caller's company before computing.
type QueryService interface {
	GetDay(ctx context.Context, employeeID string, date string) (DayOutcomeResponse, error)
	GetPeriodSummary(ctx context.Context, employeeID string, req PeriodSummaryRequest) (PeriodSummaryResponse, error)
}
