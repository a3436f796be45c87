package punch

import "time"

type Type string

const (
	TypeEntry Type = "entry"
	TypeExit  Type = "exit"
)

var TypeValues = []string{string(TypeEntry), string(TypeExit)}

// Punch is a single clock event. OccurredAt is stored in UTC; the business
// calendar day it belongs to is derived at read time through the shared time
// zone normalizer. Punches are immutable here; corrections go through an
// external approval workflow that replaces rows wholesale.
type Punch struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Type       Type
	OccurredAt time.Time
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
}
