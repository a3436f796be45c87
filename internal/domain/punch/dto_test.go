package punch

import (
	"testing"

	"github.com/andeanwork/asistencia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestRecordPunchRequest_Validate(t *testing.T) {
	lat, lon := 4.711, -74.0721
	badLat, badLon := 91.0, -181.0

	tests := []struct {
		name    string
		req     RecordPunchRequest
		wantErr bool
	}{
		{"entry", RecordPunchRequest{Type: "entry"}, false},
		{"exit with location", RecordPunchRequest{Type: "exit", Latitude: &lat, Longitude: &lon}, false},
		{"unknown type", RecordPunchRequest{Type: "break"}, true},
		{"empty type", RecordPunchRequest{}, true},
		{"latitude out of range", RecordPunchRequest{Type: "entry", Latitude: &badLat}, true},
		{"longitude out of range", RecordPunchRequest{Type: "entry", Longitude: &badLon}, true},
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
