package report

import "context"

// Service produces payroll-facing aggregations over whole periods.
type Service interface {
	// GetMonthlyWorktime aggregates every active employee's worktime over one
	// calendar month in the business zone.
	GetMonthlyWorktime(ctx context.Context, req MonthlyWorktimeRequest) (*MonthlyWorktimeResponse, error)
}
