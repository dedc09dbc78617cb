package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultAutoAssignSchedule sweeps for assignable work every 15 seconds.
const DefaultAutoAssignSchedule = "*/15 * * * * *"

// AutoAssignJob periodically pairs preparing orders with idle drones.
// Each sweep walks every restaurant; per-pair failures are reported in the
// sweep result and logged here without stopping the schedule.
type AutoAssignJob struct {
	handler  commands.AutoAssignCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutoAssignJob creates the auto-assignment job on the given cron schedule
// (with seconds field). An empty schedule falls back to DefaultAutoAssignSchedule.
func NewAutoAssignJob(
	handler commands.AutoAssignCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AutoAssignJob {
	if schedule == "" {
		schedule = DefaultAutoAssignSchedule
	}

	return &AutoAssignJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "auto_assign_job"),
	}
}

// Start begins the periodic auto-assignment sweep.
func (j *AutoAssignJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd := commands.NewAutoAssignCommand()

		results, sweepErr := j.handler.Handle(ctx, cmd)
		if sweepErr != nil {
			j.logger.ErrorContext(ctx, "Auto-assign sweep failed", "error", sweepErr)
			return
		}

		// An empty sweep is the normal case and stays quiet
		for _, result := range results {
			if result.Err != nil {
				j.logger.ErrorContext(ctx, "Auto-assign pair failed",
					"order_id", result.OrderID.String(),
					"drone_id", result.DroneID.String(),
					"error", result.Err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-assign job started", "schedule", j.schedule)
	return nil
}

// Stop stops the auto-assignment job.
func (j *AutoAssignJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-assign job stopped")
}
