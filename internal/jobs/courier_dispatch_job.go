package jobs

import (
	"context"
	"errors"
	"log/slog"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// CourierDispatchJob manages the scheduled auto-dispatch of ready orders.
// Runs every three seconds to hand the oldest ready order to the least
// loaded courier.
type CourierDispatchJob struct {
	handler commands.DispatchNextOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierDispatchJob creates a new job for auto-dispatching orders.
// Uses DispatchNextOrderCommandHandler to process one dispatch cycle per tick.
func NewCourierDispatchJob(handler commands.DispatchNextOrderCommandHandler, logger *slog.Logger) *CourierDispatchJob {
	return &CourierDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_dispatch_job"),
	}
}

// Start begins the dispatch job to run every three seconds.
func (j *CourierDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/3 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchNextOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected idle-cycle outcomes
			if !errors.Is(err, commands.ErrNoReadyOrderFound) && !errors.Is(err, services.ErrNoCourierAvailable) {
				j.logger.ErrorContext(ctx, "Courier dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier dispatch job started (running every 3 seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *CourierDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier dispatch job stopped")
}
