package punch

import (
	"context"
	"time"
)

// Repository defines data access for punch events.
type Repository interface {
	// Create inserts a new punch event.
	Create(ctx context.Context, p Punch) (Punch, error)

	// ListBetween returns an employee's punches with fromUTC <= occurred_at <
	// toUTC, ordered by occurred_at ascending with insertion order breaking
	// ties.
	ListBetween(ctx context.Context, employeeID string, fromUTC, toUTC time.Time) ([]Punch, error)
}
