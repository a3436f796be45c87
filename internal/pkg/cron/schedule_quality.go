package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/schedule"
)

// ScheduleQualityJobs surfaces schedule data-quality problems before they
// silently turn into "no expectation" days in payroll runs.
type ScheduleQualityJobs struct {
	scheduleRepo schedule.Repository
}

func NewScheduleQualityJobs(scheduleRepo schedule.Repository) *ScheduleQualityJobs {
	return &ScheduleQualityJobs{scheduleRepo: scheduleRepo}
}

func (j *ScheduleQualityJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("scan_malformed_day_details", 6*time.Hour, j.ScanMalformedDayDetails)
}

// ScanMalformedDayDetails logs every laborable day detail missing an entry or
// exit time. The engine already treats such rows as non-laborable; this job
// makes the data problem visible to operators instead of losing it in
// per-request warnings.
func (j *ScheduleQualityJobs) ScanMalformedDayDetails(ctx context.Context) error {
	details, err := j.scheduleRepo.ListMalformedDayDetails(ctx)
	if err != nil {
		return err
	}

	if len(details) == 0 {
		slog.Debug("Cron: no malformed schedule day details found")
		return nil
	}

	for _, d := range details {
		slog.Warn("Cron: laborable schedule day detail missing entry or exit time",
			"schedule_id", d.ScheduleID,
			"schedule_name", d.ScheduleName,
			"weekday", d.Weekday,
		)
	}
	slog.Info("Cron: malformed schedule day detail scan finished", "count", len(details))

	return nil
}
