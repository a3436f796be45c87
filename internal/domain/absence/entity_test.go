package absence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbsence_Covers(t *testing.T) {
	// Range bounds stored as UTC midnights, the probe date carries a local
	// offset; coverage must compare calendar dates, not instants.
	a := Absence{
		DateFrom: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}
	bogota := time.FixedZone("UTC-5", -5*3600)

	assert.False(t, a.Covers(time.Date(2025, 3, 9, 0, 0, 0, 0, bogota)))
	assert.True(t, a.Covers(time.Date(2025, 3, 10, 0, 0, 0, 0, bogota)))
	assert.True(t, a.Covers(time.Date(2025, 3, 11, 0, 0, 0, 0, bogota)))
	assert.True(t, a.Covers(time.Date(2025, 3, 12, 0, 0, 0, 0, bogota)))
	assert.False(t, a.Covers(time.Date(2025, 3, 13, 0, 0, 0, 0, bogota)))
}
