package timezone

import (
	"log/slog"
	"time"
)

// Normalizer converts between stored UTC instants and the business calendar.
// The whole system runs on a single civil time zone: punches are persisted as
// UTC instants, but lateness, overtime and absence accounting are all defined
// over local calendar days. One Normalizer is built at process start and
// shared; ingestion and reporting must agree on the zone or daily figures
// drift.
type Normalizer struct {
	loc *time.Location
}

// New resolves the named zone from the zone database. When the entry is
// unavailable at runtime (stripped containers, missing tzdata) it falls back
// to a fixed offset so every deployment computes the same day boundaries.
func New(name string, fallbackOffsetSeconds int) *Normalizer {
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("time zone not found, using fixed offset fallback",
			"zone", name, "offset_seconds", fallbackOffsetSeconds)
		loc = time.FixedZone(name, fallbackOffsetSeconds)
	}
	return &Normalizer{loc: loc}
}

// Location returns the resolved business zone.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// DayBounds returns the [start, end) UTC window of the local calendar day
// containing the given local date. DST transitions are handled by the zone
// database: the window is whatever the zone says midnight-to-midnight is.
func (n *Normalizer) DayBounds(year int, month time.Month, day int) (time.Time, time.Time) {
	start := time.Date(year, month, day, 0, 0, 0, 0, n.loc)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}

// At returns the UTC instant of the given minutes-past-midnight on the given
// local date. Minutes may exceed 24h to address the next calendar day, which
// is how overnight shift exits are expressed.
func (n *Normalizer) At(year int, month time.Month, day int, minutes int) time.Time {
	return time.Date(year, month, day, 0, minutes, 0, 0, n.loc).UTC()
}

// ToLocal converts a UTC instant to its local calendar date and
// minutes-past-midnight.
func (n *Normalizer) ToLocal(utc time.Time) (year int, month time.Month, day int, minutes int) {
	local := utc.In(n.loc)
	year, month, day = local.Date()
	minutes = local.Hour()*60 + local.Minute()
	return year, month, day, minutes
}

// LocalDate truncates a UTC instant to its local calendar date, midnight local.
func (n *Normalizer) LocalDate(utc time.Time) time.Time {
	local := utc.In(n.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, n.loc)
}

// MinutesSinceLocalMidnight returns how many whole minutes past the local
// midnight of the given date an instant falls. Instants on the following
// calendar day yield values beyond 1440, which keeps overnight session
// arithmetic on one number line.
func (n *Normalizer) MinutesSinceLocalMidnight(year int, month time.Month, day int, utc time.Time) int {
	midnight := time.Date(year, month, day, 0, 0, 0, 0, n.loc)
	return int(utc.Sub(midnight).Minutes())
}
