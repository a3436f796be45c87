package holiday

import "time"

// Holiday is a business-calendar entry shared by the whole deployment.
// Laborable holidays still require attendance; non-laborable ones exclude the
// day from accounting and suppress absence inference.
type Holiday struct {
	ID        string
	Date      time.Time // local calendar date, midnight
	Name      string
	Laborable bool
}
