package worktime

import (
	"testing"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
	"github.com/stretchr/testify/assert"
)

// minuteIsNight is the brute-force reference: a minute of the extended day
// line is night when its wall-clock position falls in [19:00, 06:00).
func minuteIsNight(m int) bool {
	clock := m % dayMinutes
	return clock < nightEndMinutes || clock >= nightStartMinutes
}

func bruteForceNightOverlap(start, end int) int {
	total := 0
	for m := start; m < end; m++ {
		if minuteIsNight(m) {
			total++
		}
	}
	return total
}

func TestNightOverlap_MatchesBruteForce(t *testing.T) {
	// Sweep interval starts and lengths across two extended days, covering
	// every boundary the closed form has to respect.
	for start := 0; start <= 2*dayMinutes; start += 37 {
		for _, length := range []int{0, 1, 30, 359, 360, 361, 720, 1439, 1440, 1441} {
			end := start + length
			if end > 2*dayMinutes+nightEndMinutes {
				continue
			}
			want := bruteForceNightOverlap(start, end)
			got := nightOverlap(start, end)
			assert.Equalf(t, want, got, "nightOverlap(%d, %d)", start, end)
		}
	}
}

func TestNightOverlap_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       int
	}{
		{"fully diurnal", 8 * 60, 17 * 60, 0},
		{"ends exactly at 19:00", 17 * 60, 19 * 60, 0},
		{"starts exactly at 19:00", 19 * 60, 20 * 60, 60},
		{"ends exactly at 06:00", 2 * 60, 6 * 60, 4 * 60},
		{"starts exactly at 06:00", 6 * 60, 7 * 60, 0},
		{"spans midnight", 23 * 60, 25 * 60, 120},
		{"full night window", 19 * 60, 30 * 60, 11 * 60},
		{"next-day evening", 24*60 + 20*60, 24*60 + 21*60, 60},
		{"empty", 600, 600, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nightOverlap(tt.start, tt.end))
		})
	}
}

func TestSplitOvertime_DiurnalOnly(t *testing.T) {
	exp := worktime.Expectation{EntryMinutes: 8 * 60, ExitMinutes: 17 * 60}

	s := splitOvertime(exp, 8*60, 17*60+40)

	assert.Equal(t, 40, s.Total)
	assert.Equal(t, 40, s.Diurnal)
	assert.Equal(t, 0, s.Nocturnal)
	assert.Equal(t, 0, s.Premium)
}

func TestSplitOvertime_CrossesNightBoundary(t *testing.T) {
	// Scheduled to 18:00, stayed until 21:00: one diurnal hour then two
	// nocturnal hours.
	exp := worktime.Expectation{EntryMinutes: 9 * 60, ExitMinutes: 18 * 60}

	s := splitOvertime(exp, 9*60, 21*60)

	assert.Equal(t, 180, s.Total)
	assert.Equal(t, 60, s.Diurnal)
	assert.Equal(t, 120, s.Nocturnal)
	assert.Equal(t, 0, s.Premium)
}

func TestSplitOvertime_PreDawnOvertimeIsNocturnal(t *testing.T) {
	// Overnight shift scheduled to 04:00 next day, stayed until 05:30: the
	// whole excess sits before 06:00 and counts as nocturnal.
	exp := worktime.Expectation{EntryMinutes: 20 * 60, ExitMinutes: 28 * 60}

	s := splitOvertime(exp, 20*60, 29*60+30)

	assert.Equal(t, 90, s.Total)
	assert.Equal(t, 0, s.Diurnal)
	assert.Equal(t, 90, s.Nocturnal)
}

func TestSplitOvertime_OvernightOvertimePastDawn(t *testing.T) {
	// Scheduled 22:00-06:00, stayed until 06:30: the excess falls after the
	// night window closes.
	exp := worktime.Expectation{EntryMinutes: 22 * 60, ExitMinutes: 30 * 60}

	s := splitOvertime(exp, 22*60, 30*60+30)

	assert.Equal(t, 30, s.Total)
	assert.Equal(t, 30, s.Diurnal)
	assert.Equal(t, 0, s.Nocturnal)
	// In-window time from 22:00 to 06:00 is all night.
	assert.Equal(t, 8*60, s.Premium)
}

func TestSplitOvertime_PremiumWithinWindow(t *testing.T) {
	// 14:00-22:00 worked exactly: the 19:00-22:00 stretch is ordinary
	// nocturnal premium, not overtime.
	exp := worktime.Expectation{EntryMinutes: 14 * 60, ExitMinutes: 22 * 60}

	s := splitOvertime(exp, 14*60, 22*60)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 180, s.Premium)
}

func TestSplitOvertime_PremiumCappedByActualExit(t *testing.T) {
	// Left at 20:00 against a 22:00 exit: premium covers only 19:00-20:00.
	exp := worktime.Expectation{EntryMinutes: 14 * 60, ExitMinutes: 22 * 60}

	s := splitOvertime(exp, 14*60, 20*60)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 60, s.Premium)
}

func TestSplitOvertime_NoOvertimeNoPremiumForDayShift(t *testing.T) {
	exp := worktime.Expectation{EntryMinutes: 8 * 60, ExitMinutes: 17 * 60}

	s := splitOvertime(exp, 8*60, 16*60)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Premium)
}

func TestRoundUpTo(t *testing.T) {
	assert.Equal(t, 12, roundUpTo(12, 0))
	assert.Equal(t, 12, roundUpTo(12, 1))
	assert.Equal(t, 15, roundUpTo(12, 15))
	assert.Equal(t, 15, roundUpTo(15, 15))
	assert.Equal(t, 30, roundUpTo(16, 15))
	assert.Equal(t, 0, roundUpTo(0, 15))
}
