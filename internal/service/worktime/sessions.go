package worktime

import (
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/punch"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
)

// daySessions is the result of pairing one local day's punches.
type daySessions struct {
	Sessions   []worktime.Session
	FirstEntry *time.Time
	LastExit   *time.Time
	// Irregularities counts double entries, orphan exits, missing exits and
	// out-of-order pairs.
	Irregularities int
}

// buildSessions pairs punches into (entry, exit) sessions. Punches must be in
// non-decreasing instant order; ties keep input order.
//
// An entry opens a slot; a second entry while one is open supersedes it and
// counts an irregularity (the superseded entry drops out of pairing, but the
// day's very first entry is retained for lateness regardless). An exit closes
// the open slot or, with none open, counts an orphan-exit irregularity.
// First entry and last exit are tracked independently of successful pairing
// so lateness and early departure survive irregular days: a lunch-out/in pair
// is just a session boundary, not interference.
func buildSessions(punches []punch.Punch) daySessions {
	var ds daySessions
	var open *time.Time

	for _, p := range punches {
		at := p.OccurredAt
		switch p.Type {
		case punch.TypeEntry:
			if ds.FirstEntry == nil {
				first := at
				ds.FirstEntry = &first
			}
			if open != nil {
				ds.Irregularities++
			}
			entry := at
			open = &entry
		case punch.TypeExit:
			if ds.LastExit == nil || at.After(*ds.LastExit) {
				last := at
				ds.LastExit = &last
			}
			if open == nil {
				ds.Irregularities++
				continue
			}
			entry := *open
			exit := at
			if exit.Before(entry) {
				// Out-of-order data: clamp the pair to zero length rather
				// than propagate a negative duration.
				ds.Irregularities++
				exit = entry
			}
			ds.Sessions = append(ds.Sessions, worktime.Session{EntryAt: entry, ExitAt: exit})
			open = nil
		}
	}

	if open != nil {
		ds.Irregularities++
	}

	return ds
}
