package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/employee"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/report"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/timezone"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	tz        *timezone.Normalizer
	engine    worktime.Engine
	employees employee.Repository
}

func NewReportService(tz *timezone.Normalizer, engine worktime.Engine, employees employee.Repository) report.Service {
	return &ReportServiceImpl{tz: tz, engine: engine, employees: employees}
}

func (s *ReportServiceImpl) getCompanyID(ctx context.Context) (string, error) {
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

// GetMonthlyWorktime implements report.Service.
func (s *ReportServiceImpl) GetMonthlyWorktime(ctx context.Context, req report.MonthlyWorktimeRequest) (*report.MonthlyWorktimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	month, _ := strconv.Atoi(req.Month)
	year, _ := strconv.Atoi(req.Year)

	loc := s.tz.Location()
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, -1)

	employees, err := s.employees.ListActive(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows := make([]report.MonthlyWorktimeRow, len(employees))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			summary, err := s.engine.ComputePeriod(gCtx, emp.ID, from, to)
			if err != nil {
				return fmt.Errorf("compute period for employee %s: %w", emp.ID, err)
			}
			rows[i] = toRow(emp, summary)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &report.MonthlyWorktimeResponse{
		Month: month,
		Year:  year,
		From:  from.Format("2006-01-02"),
		To:    to.Format("2006-01-02"),
		Rows:  rows,
	}, nil
}

func toRow(emp employee.Employee, summary worktime.PeriodSummary) report.MonthlyWorktimeRow {
	return report.MonthlyWorktimeRow{
		EmployeeID:                emp.ID,
		FullName:                  emp.FullName,
		Position:                  emp.Position,
		LaborableDays:             summary.LaborableDays,
		DaysPresent:               summary.DaysPresent,
		InferredUnexcusedAbsences: len(summary.InferredUnexcusedAbsences),
		TardinessCount:            len(summary.Tardiness),
		TotalNetLateMinutes:       summary.TotalNetLateMinutes,
		EarlyDepartureCount:       summary.EarlyDepartureCount,
		WorkedHours:               summary.NetWorkedHours,
		DiurnalOvertimeHours:      summary.DiurnalOvertimeHours,
		NocturnalOvertimeHours:    summary.NocturnalOvertimeHours,
		NocturnalPremiumHours:     summary.OrdinaryNocturnalPremiumHours,
	}
}
