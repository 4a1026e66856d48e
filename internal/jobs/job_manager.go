package jobs

import (
	"fmt"
	"log/slog"

	"routeplan/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	computeExpiryJob *ComputeExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireComputesHandler commands.ExpireComputesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		computeExpiryJob: NewComputeExpiryJob(expireComputesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.computeExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start compute expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.computeExpiryJob.Stop()
}
