package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FallsBackToFixedOffset(t *testing.T) {
	n := New("Nowhere/Invalid", -5*3600)
	require.NotNil(t, n.Location())

	// The fallback zone must produce the same offset as the real one.
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, n.Location())
	_, offset := at.Zone()
	assert.Equal(t, -5*3600, offset)
}

func TestDayBounds(t *testing.T) {
	n := New("America/Bogota", -5*3600)

	start, end := n.DayBounds(2025, time.March, 10)

	assert.Equal(t, time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 11, 5, 0, 0, 0, time.UTC), end)
}

func TestAt_MinutesBeyondMidnight(t *testing.T) {
	n := New("America/Bogota", -5*3600)

	// 30:00 on March 10 is 06:00 on March 11 local.
	at := n.At(2025, time.March, 10, 30*60)

	assert.Equal(t, time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC), at)
}

func TestToLocal(t *testing.T) {
	n := New("America/Bogota", -5*3600)

	y, m, d, minutes := n.ToLocal(time.Date(2025, 3, 11, 2, 30, 0, 0, time.UTC))

	// 02:30 UTC is 21:30 the previous local day.
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 10, d)
	assert.Equal(t, 21*60+30, minutes)
}

func TestLocalDate(t *testing.T) {
	n := New("America/Bogota", -5*3600)

	day := n.LocalDate(time.Date(2025, 3, 11, 2, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, n.Location()), day)
}

func TestMinutesSinceLocalMidnight_NextDayExtends(t *testing.T) {
	n := New("America/Bogota", -5*3600)

	// 06:30 local on March 11 relative to March 10 midnight.
	instant := time.Date(2025, 3, 11, 6, 30, 0, 0, n.Location()).UTC()
	minutes := n.MinutesSinceLocalMidnight(2025, time.March, 10, instant)

	assert.Equal(t, 24*60+6*60+30, minutes)
}
