package absence

import (
	"context"
	"time"
)

type Repository interface {
	// ListApprovedOverlapping returns approved absences whose range overlaps
	// [from, to] for the employee.
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]Absence, error)
}
