package worktime

import (
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PeriodSummaryRequest struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`   // YYYY-MM-DD
}

func (r *PeriodSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, okTo := validator.IsValidDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if okFrom && okTo && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must not be after to",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	EntryAt string `json:"entry_at"` // HH:MM local
	ExitAt  string `json:"exit_at"`  // HH:MM local
	Minutes int    `json:"minutes"`
}

type ExpectationResponse struct {
	ScheduleID          string `json:"schedule_id"`
	ScheduleName        string `json:"schedule_name,omitempty"`
	Entry               string `json:"entry"` // HH:MM
	Exit                string `json:"exit"`  // HH:MM, "+1" suffix when next-day
	ToleranceMinutes    int    `json:"tolerance_minutes"`
	BreakMinutes        int    `json:"break_minutes"`
	CompensationAllowed bool   `json:"compensation_allowed"`
}

type DayOutcomeResponse struct {
	Date                          string               `json:"date"`
	Classification                string               `json:"classification"`
	Expected                      *ExpectationResponse `json:"expected,omitempty"`
	Sessions                      []SessionResponse    `json:"sessions"`
	FirstEntry                    *string              `json:"first_entry,omitempty"`
	LastExit                      *string              `json:"last_exit,omitempty"`
	RawLateMinutes                int                  `json:"raw_late_minutes"`
	NetLateMinutes                int                  `json:"net_late_minutes"`
	EarlyDepartureMinutes         int                  `json:"early_departure_minutes"`
	DiurnalOvertimeHours          decimal.Decimal      `json:"diurnal_overtime_hours"`
	NocturnalOvertimeHours        decimal.Decimal      `json:"nocturnal_overtime_hours"`
	OrdinaryNocturnalPremiumHours decimal.Decimal      `json:"ordinary_nocturnal_premium_hours"`
	NetWorkedHours                decimal.Decimal      `json:"net_worked_hours"`
	Irregularities                int                  `json:"irregularities"`
	Note                          string               `json:"note,omitempty"`
}

type TardinessRecordResponse struct {
	Date           string `json:"date"`
	ExpectedEntry  string `json:"expected_entry"` // HH:MM local
	ActualEntry    string `json:"actual_entry"`   // HH:MM local
	RawLateMinutes int    `json:"raw_late_minutes"`
	NetLateMinutes int    `json:"net_late_minutes"`
	Classification string `json:"classification"`
}

type AbsenceRecordResponse struct {
	DateFrom string  `json:"date_from"`
	DateTo   string  `json:"date_to"`
	Reason   *string `json:"reason,omitempty"`
}

type PeriodSummaryResponse struct {
	EmployeeID                    string                    `json:"employee_id"`
	From                          string                    `json:"from"`
	To                            string                    `json:"to"`
	LaborableDays                 int                       `json:"laborable_days"`
	DaysPresent                   int                       `json:"days_present"`
	Days                          []DayOutcomeResponse      `json:"days"`
	Tardiness                     []TardinessRecordResponse `json:"tardiness"`
	ApprovedAbsences              []AbsenceRecordResponse   `json:"approved_absences"`
	InferredUnexcusedAbsences     []string                  `json:"inferred_unexcused_absences"`
	TotalNetLateMinutes           int                       `json:"total_net_late_minutes"`
	EarlyDepartureCount           int                       `json:"early_departure_count"`
	EarlyDepartureMinutes         int                       `json:"early_departure_minutes"`
	DiurnalOvertimeHours          decimal.Decimal           `json:"diurnal_overtime_hours"`
	NocturnalOvertimeHours        decimal.Decimal           `json:"nocturnal_overtime_hours"`
	OrdinaryNocturnalPremiumHours decimal.Decimal           `json:"ordinary_nocturnal_premium_hours"`
	NetWorkedHours                decimal.Decimal           `json:"net_worked_hours"`
}

func formatMinutesOfDay(minutes int) string {
	suffix := ""
	if minutes >= 24*60 {
		minutes -= 24 * 60
		suffix = "+1"
	}
	return time.Date(0, 1, 1, 0, minutes, 0, 0, time.UTC).Format("15:04") + suffix
}

func formatLocalClock(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("15:04")
	return &s
}

// NewDayOutcomeResponse maps a DayOutcome to its transport shape. Instants
// are rendered as local wall-clock times in the business zone.
func NewDayOutcomeResponse(d DayOutcome, loc *time.Location) DayOutcomeResponse {
	resp := DayOutcomeResponse{
		Date:                          d.Date.Format("2006-01-02"),
		Classification:                string(d.Classification),
		Sessions:                      make([]SessionResponse, 0, len(d.Sessions)),
		FirstEntry:                    formatLocalClock(d.FirstEntry, loc),
		LastExit:                      formatLocalClock(d.LastExit, loc),
		RawLateMinutes:                d.RawLateMinutes,
		NetLateMinutes:                d.NetLateMinutes,
		EarlyDepartureMinutes:         d.EarlyDepartureMinutes,
		DiurnalOvertimeHours:          HoursFromMinutes(d.DiurnalOvertimeMinutes),
		NocturnalOvertimeHours:        HoursFromMinutes(d.NocturnalOvertimeMinutes),
		OrdinaryNocturnalPremiumHours: HoursFromMinutes(d.OrdinaryNocturnalPremiumMinutes),
		NetWorkedHours:                HoursFromMinutes(d.NetWorkedMinutes),
		Irregularities:                d.Irregularities,
		Note:                          d.Note,
	}

	if d.Expected != nil {
		resp.Expected = &ExpectationResponse{
			ScheduleID:          d.Expected.ScheduleID,
			ScheduleName:        d.Expected.ScheduleName,
			Entry:               formatMinutesOfDay(d.Expected.EntryMinutes),
			Exit:                formatMinutesOfDay(d.Expected.ExitMinutes),
			ToleranceMinutes:    d.Expected.ToleranceMinutes,
			BreakMinutes:        d.Expected.BreakMinutes,
			CompensationAllowed: d.Expected.CompensationAllowed,
		}
	}

	for _, s := range d.Sessions {
		resp.Sessions = append(resp.Sessions, SessionResponse{
			EntryAt: s.EntryAt.In(loc).Format("15:04"),
			ExitAt:  s.ExitAt.In(loc).Format("15:04"),
			Minutes: s.Minutes(),
		})
	}

	return resp
}

// NewPeriodSummaryResponse maps a PeriodSummary to its transport shape.
func NewPeriodSummaryResponse(p PeriodSummary, loc *time.Location) PeriodSummaryResponse {
	resp := PeriodSummaryResponse{
		EmployeeID:                    p.EmployeeID,
		From:                          p.From.Format("2006-01-02"),
		To:                            p.To.Format("2006-01-02"),
		LaborableDays:                 p.LaborableDays,
		DaysPresent:                   p.DaysPresent,
		Days:                          make([]DayOutcomeResponse, 0, len(p.Days)),
		Tardiness:                     make([]TardinessRecordResponse, 0, len(p.Tardiness)),
		ApprovedAbsences:              make([]AbsenceRecordResponse, 0, len(p.ApprovedAbsences)),
		InferredUnexcusedAbsences:     make([]string, 0, len(p.InferredUnexcusedAbsences)),
		TotalNetLateMinutes:           p.TotalNetLateMinutes,
		EarlyDepartureCount:           p.EarlyDepartureCount,
		EarlyDepartureMinutes:         p.EarlyDepartureMinutes,
		DiurnalOvertimeHours:          p.DiurnalOvertimeHours,
		NocturnalOvertimeHours:        p.NocturnalOvertimeHours,
		OrdinaryNocturnalPremiumHours: p.OrdinaryNocturnalPremiumHours,
		NetWorkedHours:                p.NetWorkedHours,
	}

	for _, d := range p.Days {
		resp.Days = append(resp.Days, NewDayOutcomeResponse(d, loc))
	}
	for _, t := range p.Tardiness {
		resp.Tardiness = append(resp.Tardiness, TardinessRecordResponse{
			Date:           t.Date.Format("2006-01-02"),
			ExpectedEntry:  t.ExpectedEntry.In(loc).Format("15:04"),
			ActualEntry:    t.ActualEntry.In(loc).Format("15:04"),
			RawLateMinutes: t.RawLateMinutes,
			NetLateMinutes: t.NetLateMinutes,
			Classification: string(t.Classification),
		})
	}
	for _, a := range p.ApprovedAbsences {
		resp.ApprovedAbsences = append(resp.ApprovedAbsences, AbsenceRecordResponse{
			DateFrom: a.DateFrom.Format("2006-01-02"),
			DateTo:   a.DateTo.Format("2006-01-02"),
			Reason:   a.Reason,
		})
	}
	for _, d := range p.InferredUnexcusedAbsences {
		resp.InferredUnexcusedAbsences = append(resp.InferredUnexcusedAbsences, d.Format("2006-01-02"))
	}

	return resp
}
