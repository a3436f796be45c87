package employee

import "time"

type Employee struct {
	ID        string
	CompanyID string
	FullName  string
	Position  *string
	Status    string // active, resigned
	HireDate  time.Time
}
