package dashboard

// LatecomerEntry is one row of the today-view latecomer ranking.
type LatecomerEntry struct {
	EmployeeID     string  `json:"employee_id"`
	FullName       string  `json:"full_name"`
	Position       *string `json:"position,omitempty"`
	ScheduleName   string  `json:"schedule_name"`
	ExpectedEntry  string  `json:"expected_entry"` // HH:MM local
	ActualEntry    string  `json:"actual_entry"`   // HH:MM local
	NetLateMinutes int     `json:"net_late_minutes"`
	Classification string  `json:"classification"`
}

// TodayResponse is the live attendance snapshot for one company.
type TodayResponse struct {
	Date              string           `json:"date"` // YYYY-MM-DD in the business zone
	TotalActive       int              `json:"total_active"`
	Scheduled         int              `json:"scheduled"`
	Present           int              `json:"present"`
	NotYetPresent     int              `json:"not_yet_present"`
	Late              int              `json:"late"`
	OnApprovedAbsence int              `json:"on_approved_absence"`
	Latecomers        []LatecomerEntry `json:"latecomers"`
}
