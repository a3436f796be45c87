package worktime

import "github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"

// The night window is [19:00, 06:00) local, fixed by labor law, not
// per-schedule configurable.
const (
	nightStartMinutes = 19 * 60 // 19:00
	nightEndMinutes   = 6 * 60  // 06:00
	dayMinutes        = 24 * 60
)

// nightSegments are the night-window intervals on the extended minute line of
// one local day. Values run past 1440 for shifts that cross midnight; two
// extended days bound every span the engine produces.
var nightSegments = [][2]int{
	{0, nightEndMinutes},
	{nightStartMinutes, dayMinutes + nightEndMinutes},
	{dayMinutes + nightStartMinutes, 2*dayMinutes + nightEndMinutes},
}

// overlap returns the length of the intersection of [aStart, aEnd) and
// [bStart, bEnd), floored at zero.
func overlap(aStart, aEnd, bStart, bEnd int) int {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}

// nightOverlap returns how many minutes of [start, end) fall inside the night
// window.
func nightOverlap(start, end int) int {
	total := 0
	for _, seg := range nightSegments {
		total += overlap(start, end, seg[0], seg[1])
	}
	return total
}

// overtimeSplit carries the closed-form decomposition of one day's time
// beyond and inside the scheduled window, all in minutes.
type overtimeSplit struct {
	Total     int
	Diurnal   int
	Nocturnal int
	// Premium is the ordinary nocturnal premium: time worked inside the
	// scheduled window that falls after 19:00. Not overtime.
	Premium int
}

// splitOvertime decomposes the span beyond the scheduled exit across the
// day/night boundary and computes the ordinary nocturnal premium. Inputs are
// minutes past the local midnight of the shift's start day; lastExit beyond
// 1440 expresses a next-day exit. Closed-form interval overlap, no per-minute
// scan.
func splitOvertime(exp worktime.Expectation, firstEntryMin, lastExitMin int) overtimeSplit {
	var s overtimeSplit

	if lastExitMin > exp.ExitMinutes {
		s.Total = lastExitMin - exp.ExitMinutes
		s.Nocturnal = nightOverlap(exp.ExitMinutes, lastExitMin)
		s.Diurnal = s.Total - s.Nocturnal
	}

	// The premium exists only for schedules whose window extends past 19:00.
	if exp.ExitMinutes > nightStartMinutes {
		windowEnd := min(lastExitMin, exp.ExitMinutes)
		s.Premium = nightOverlap(max(firstEntryMin, nightStartMinutes), windowEnd)
	}

	return s
}
