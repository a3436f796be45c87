package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/dashboard"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/employee"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/timezone"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

// latecomerLimit caps the ranking so the today view stays a glance, not a report.
const latecomerLimit = 10

type DashboardServiceImpl struct {
	tz        *timezone.Normalizer
	engine    worktime.Engine
	employees employee.Repository
}

func NewDashboardService(tz *timezone.Normalizer, engine worktime.Engine, employees employee.Repository) dashboard.Service {
	return &DashboardServiceImpl{tz: tz, engine: engine, employees: employees}
}

func (s *DashboardServiceImpl) getCompanyID(ctx context.Context) (string, error) {
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

// GetToday computes today's outcome for every active employee in parallel and
// folds the results into one snapshot.
func (s *DashboardServiceImpl) GetToday(ctx context.Context) (*dashboard.TodayResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	today := s.tz.LocalDate(time.Now().UTC())

	employees, err := s.employees.ListActive(ctx, companyID)
	if err != nil {
		return nil, err
	}

	outcomes := make([]worktime.DayOutcome, len(employees))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			outcome, err := s.engine.ComputeDay(gCtx, emp.ID, today)
			if err != nil {
				return fmt.Errorf("compute day for employee %s: %w", emp.ID, err)
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dashboard.TodayResponse{
		Date:        today.Format("2006-01-02"),
		TotalActive: len(employees),
		Latecomers:  []dashboard.LatecomerEntry{},
	}

	for i, outcome := range outcomes {
		if outcome.Classification == worktime.ClassAbsent {
			resp.OnApprovedAbsence++
			continue
		}
		if !outcome.Countable() {
			continue
		}
		resp.Scheduled++

		if !outcome.HasPunches() {
			resp.NotYetPresent++
			continue
		}
		resp.Present++

		switch outcome.Classification {
		case worktime.ClassLateUncompensated, worktime.ClassLateCompensated, worktime.ClassLatePartiallyCompensated:
			resp.Late++
			resp.Latecomers = append(resp.Latecomers, s.latecomerEntry(employees[i], outcome))
		}
	}

	sort.SliceStable(resp.Latecomers, func(a, b int) bool {
		return resp.Latecomers[a].NetLateMinutes > resp.Latecomers[b].NetLateMinutes
	})
	if len(resp.Latecomers) > latecomerLimit {
		resp.Latecomers = resp.Latecomers[:latecomerLimit]
	}

	return resp, nil
}

func (s *DashboardServiceImpl) latecomerEntry(emp employee.Employee, outcome worktime.DayOutcome) dashboard.LatecomerEntry {
	entry := dashboard.LatecomerEntry{
		EmployeeID:     emp.ID,
		FullName:       emp.FullName,
		Position:       emp.Position,
		NetLateMinutes: outcome.NetLateMinutes,
		Classification: string(outcome.Classification),
	}
	if outcome.Expected != nil {
		entry.ScheduleName = outcome.Expected.ScheduleName
		expected := s.tz.At(outcome.Date.Year(), outcome.Date.Month(), outcome.Date.Day(), outcome.Expected.EntryMinutes)
		entry.ExpectedEntry = expected.In(s.tz.Location()).Format("15:04")
	}
	if outcome.FirstEntry != nil {
		entry.ActualEntry = outcome.FirstEntry.In(s.tz.Location()).Format("15:04")
	}
	return entry
}
