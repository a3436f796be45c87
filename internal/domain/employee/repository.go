package employee

import "context"

type Repository interface {
	// GetByID retrieves an employee with company isolation.
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// ListActive returns all active employees for a company.
	ListActive(ctx context.Context, companyID string) ([]Employee, error)
}
