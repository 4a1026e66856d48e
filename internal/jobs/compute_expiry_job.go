package jobs

import (
	"context"
	"log/slog"

	"routeplan/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ComputeExpiryJob sweeps pending compute jobs whose solver deadline has
// long passed and fails them, so a lost callback never leaves a compute
// pending forever.
type ComputeExpiryJob struct {
	handler commands.ExpireComputesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewComputeExpiryJob creates a job that runs the expiry sweep every minute.
func NewComputeExpiryJob(handler commands.ExpireComputesCommandHandler, logger *slog.Logger) *ComputeExpiryJob {
	return &ComputeExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "compute_expiry_job"),
	}
}

// Start begins the expiry sweep on a one-minute schedule.
func (j *ComputeExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireComputesCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Compute expiry command construction failed", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Compute expiry sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Compute expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *ComputeExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Compute expiry job stopped")
}
