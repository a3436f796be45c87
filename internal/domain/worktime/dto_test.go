package worktime

import (
	"testing"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodSummaryRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     PeriodSummaryRequest
		wantErr bool
	}{
		{"valid", PeriodSummaryRequest{From: "2025-03-01", To: "2025-03-31"}, false},
		{"same day", PeriodSummaryRequest{From: "2025-03-01", To: "2025-03-01"}, false},
		{"reversed", PeriodSummaryRequest{From: "2025-03-31", To: "2025-03-01"}, true},
		{"bad from", PeriodSummaryRequest{From: "03/01/2025", To: "2025-03-31"}, true},
		{"missing to", PeriodSummaryRequest{From: "2025-03-01"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				var verrs validator.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatMinutesOfDay(t *testing.T) {
	assert.Equal(t, "08:00", formatMinutesOfDay(8*60))
	assert.Equal(t, "00:00", formatMinutesOfDay(0))
	assert.Equal(t, "06:00+1", formatMinutesOfDay(30*60))
}

func TestHoursFromMinutes(t *testing.T) {
	assert.Equal(t, "1.5", HoursFromMinutes(90).String())
	assert.Equal(t, "0.17", HoursFromMinutes(10).String())
	assert.Equal(t, "0", HoursFromMinutes(0).String())
}

func TestNewDayOutcomeResponse_OvernightExit(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	exit := time.Date(2025, 3, 11, 6, 30, 0, 0, loc)
	entry := time.Date(2025, 3, 10, 22, 0, 0, 0, loc)

	d := DayOutcome{
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		Classification: ClassPunctual,
		Expected: &Expectation{
			ScheduleID:   "sched-1",
			EntryMinutes: 22 * 60,
			ExitMinutes:  30 * 60,
		},
		Sessions:   []Session{{EntryAt: entry, ExitAt: exit}},
		FirstEntry: &entry,
		LastExit:   &exit,
	}

	resp := NewDayOutcomeResponse(d, loc)

	assert.Equal(t, "2025-03-10", resp.Date)
	require.NotNil(t, resp.Expected)
	assert.Equal(t, "22:00", resp.Expected.Entry)
	assert.Equal(t, "06:00+1", resp.Expected.Exit)
	require.NotNil(t, resp.LastExit)
	assert.Equal(t, "06:30", *resp.LastExit)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, 510, resp.Sessions[0].Minutes)
}
