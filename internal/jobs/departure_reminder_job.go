package jobs

import (
	"context"
	"log/slog"
	"time"

	"jastip/internal/core/application/usecases/queries"
	"jastip/internal/core/domain/model/batch"

	"github.com/robfig/cron/v3"
)

// DepartureReminderJob watches the batch board for open batches whose
// estimated departure has passed. Runs hourly and logs a warning per overdue
// batch so operators notice anything that should already be on the truck.
type DepartureReminderJob struct {
	handler queries.GetBatchesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewDepartureReminderJob creates the hourly departure watchdog.
func NewDepartureReminderJob(handler queries.GetBatchesQueryHandler, logger *slog.Logger) *DepartureReminderJob {
	return &DepartureReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "departure_reminder_job"),
		now:     time.Now,
	}
}

// Start schedules the reminder to run at the top of every hour.
func (j *DepartureReminderJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Departure reminder job started (running hourly)")
	return nil
}

// Run performs a single reminder sweep.
func (j *DepartureReminderJob) Run() {
	ctx := context.Background()

	batches, err := j.handler.Handle(ctx, queries.NewGetBatchesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Departure reminder sweep failed", "error", err)
		return
	}

	now := j.now()
	for _, row := range batches {
		if row.Status != batch.Open.String() || row.ETD == nil || !row.ETD.Before(now) {
			continue
		}

		j.logger.WarnContext(ctx, "Batch is past its estimated departure but still open",
			"batch_code", row.Code,
			"etd", row.ETD.Format(time.RFC3339),
			"parcel_count", row.ParcelCount,
		)
	}
}

// Stop stops the reminder job.
func (j *DepartureReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Departure reminder job stopped")
}
