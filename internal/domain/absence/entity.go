package absence

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Absence is an approved-leave record covering an inclusive local date range.
// Only approved records influence worktime accounting; the approval workflow
// itself is external.
type Absence struct {
	ID         string
	EmployeeID string
	DateFrom   time.Time
	DateTo     time.Time
	Status     Status
	Reason     *string
}

// Covers reports whether the absence range contains the given calendar date.
// Comparison is by date label, not instant: range bounds are stored as plain
// dates while engine days carry the business-zone offset.
func (a Absence) Covers(date time.Time) bool {
	d := dateOrdinal(date)
	return d >= dateOrdinal(a.DateFrom) && d <= dateOrdinal(a.DateTo)
}

func dateOrdinal(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
