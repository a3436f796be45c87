package punch

import (
	"context"
	"time"
)

// Service defines punch ingestion. Geofence and face checks happen upstream;
// by the time a request reaches this service it is already validated.
type Service interface {
	// RecordPunch stores a clock event for the authenticated employee at the
	// current instant.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (PunchResponse, error)

	// ListMyPunches returns the authenticated employee's punches over an
	// inclusive local date range.
	ListMyPunches(ctx context.Context, from, to time.Time) (ListPunchesResponse, error)
}
