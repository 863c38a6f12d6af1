package jobs

import (
	"fmt"
	"log/slog"

	"controltower/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderWatchJob *OrderWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderWatchJob: NewOrderWatchJob(uncompletedOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start order watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderWatchJob.Stop()
}
