package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/absence"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.Repository {
	return &absenceRepositoryImpl{db: db}
}

// ListApprovedOverlapping implements absence.Repository.
func (r *absenceRepositoryImpl) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date_from, date_to, status, reason
		FROM absence_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND date_from <= $2
		  AND date_to >= $3
		ORDER BY date_from ASC
	`

	rows, err := q.Query(ctx, query, employeeID, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		var a absence.Absence
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.DateFrom, &a.DateTo, &a.Status, &a.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absences: %w", err)
	}

	return absences, nil
}
