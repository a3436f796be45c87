package dashboard

import "context"

// Service builds the live attendance snapshot for the authenticated
// company's active employees.
type Service interface {
	GetToday(ctx context.Context) (*TodayResponse, error)
}
