package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/punch"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/timezone"
	"github.com/go-chi/jwtauth/v5"
)

type PunchServiceImpl struct {
	tz      *timezone.Normalizer
	punches punch.Repository
}

func NewPunchService(tz *timezone.Normalizer, punches punch.Repository) punch.Service {
	return &PunchServiceImpl{tz: tz, punches: punches}
}

func claimsFromContext(ctx context.Context) (employeeID, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	companyID, ok = claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return employeeID, companyID, nil
}

// RecordPunch implements punch.Service.
func (s *PunchServiceImpl) RecordPunch(ctx context.Context, req punch.RecordPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	created, err := s.punches.Create(ctx, punch.Punch{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Type:       punch.Type(req.Type),
		OccurredAt: time.Now().UTC(),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return punch.PunchResponse{}, err
	}

	return s.toResponse(created), nil
}

// ListMyPunches implements punch.Service.
func (s *PunchServiceImpl) ListMyPunches(ctx context.Context, from, to time.Time) (punch.ListPunchesResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return punch.ListPunchesResponse{}, err
	}

	// Inclusive local date range widened to UTC instants covering both ends.
	fromUTC, _ := s.tz.DayBounds(from.Year(), from.Month(), from.Day())
	_, toUTC := s.tz.DayBounds(to.Year(), to.Month(), to.Day())

	punches, err := s.punches.ListBetween(ctx, employeeID, fromUTC, toUTC)
	if err != nil {
		return punch.ListPunchesResponse{}, err
	}

	resp := punch.ListPunchesResponse{
		EmployeeID: employeeID,
		From:       from.Format("2006-01-02"),
		To:         to.Format("2006-01-02"),
		Punches:    make([]punch.PunchResponse, 0, len(punches)),
	}
	for _, p := range punches {
		resp.Punches = append(resp.Punches, s.toResponse(p))
	}

	return resp, nil
}

func (s *PunchServiceImpl) toResponse(p punch.Punch) punch.PunchResponse {
	local := p.OccurredAt.In(s.tz.Location())
	return punch.PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Type:       string(p.Type),
		OccurredAt: p.OccurredAt.Format(time.RFC3339),
		LocalDate:  local.Format("2006-01-02"),
		LocalTime:  local.Format("15:04"),
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
	}
}
