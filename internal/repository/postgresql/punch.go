package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/punch"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.Repository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.Repository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			id, employee_id, company_id, punch_type, occurred_at, latitude, longitude, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, company_id, punch_type, occurred_at, latitude, longitude, created_at
	`

	id, err := uuid.NewV7()
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to generate punch id: %w", err)
	}

	now := time.Now().UTC()
	var created punch.Punch
	err = q.QueryRow(ctx, query,
		id.String(), p.EmployeeID, p.CompanyID, string(p.Type),
		p.OccurredAt.UTC(), p.Latitude, p.Longitude, now,
	).Scan(
		&created.ID, &created.EmployeeID, &created.CompanyID, &created.Type,
		&created.OccurredAt, &created.Latitude, &created.Longitude, &created.CreatedAt,
	)

	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return created, nil
}

// ListBetween implements punch.Repository.
// Ordering matters to the pairing pass: occurred_at ascending with insertion
// order (created_at, id) breaking ties between same-instant punches.
func (r *punchRepositoryImpl) ListBetween(ctx context.Context, employeeID string, fromUTC, toUTC time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, punch_type, occurred_at, latitude, longitude, created_at
		FROM punches
		WHERE employee_id = $1
		  AND occurred_at >= $2
		  AND occurred_at < $3
		ORDER BY occurred_at ASC, created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID, fromUTC, toUTC)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.CompanyID, &p.Type,
			&p.OccurredAt, &p.Latitude, &p.Longitude, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}
