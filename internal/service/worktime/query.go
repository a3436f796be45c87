package worktime

import (
	"context"
	"fmt"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/employee"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/timezone"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type QueryServiceImpl struct {
	tz        *timezone.Normalizer
	engine    worktime.Engine
	employees employee.Repository
}

func NewQueryService(tz *timezone.Normalizer, engine worktime.Engine, employees employee.Repository) worktime.QueryService {
	return &QueryServiceImpl{tz: tz, engine: engine, employees: employees}
}

func (s *QueryServiceImpl) getCompanyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id not found in claims")
	}
	return companyID, nil
}

// resolveEmployee checks the target employee exists within the caller's
// company before any computation happens.
func (s *QueryServiceImpl) resolveEmployee(ctx context.Context, employeeID string) error {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return err
	}
	if _, err := s.employees.GetByID(ctx, employeeID, companyID); err != nil {
		return err
	}
	return nil
}

// GetDay implements worktime.QueryService.
func (s *QueryServiceImpl) GetDay(ctx context.Context, employeeID string, date string) (worktime.DayOutcomeResponse, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if len(errs) > 0 {
		return worktime.DayOutcomeResponse{}, errs
	}

	if err := s.resolveEmployee(ctx, employeeID); err != nil {
		return worktime.DayOutcomeResponse{}, err
	}

	loc := s.tz.Location()
	localDate := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc)

	outcome, err := s.engine.ComputeDay(ctx, employeeID, localDate)
	if err != nil {
		return worktime.DayOutcomeResponse{}, err
	}

	return worktime.NewDayOutcomeResponse(outcome, loc), nil
}

// GetPeriodSummary implements worktime.QueryService.
func (s *QueryServiceImpl) GetPeriodSummary(ctx context.Context, employeeID string, req worktime.PeriodSummaryRequest) (worktime.PeriodSummaryResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return worktime.PeriodSummaryResponse{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		}}
	}
	if err := req.Validate(); err != nil {
		return worktime.PeriodSummaryResponse{}, err
	}

	if err := s.resolveEmployee(ctx, employeeID); err != nil {
		return worktime.PeriodSummaryResponse{}, err
	}

	loc := s.tz.Location()
	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)
	localFrom := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	localTo := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)

	summary, err := s.engine.ComputePeriod(ctx, employeeID, localFrom, localTo)
	if err != nil {
		return worktime.PeriodSummaryResponse{}, err
	}

	return worktime.NewPeriodSummaryResponse(summary, loc), nil
}
