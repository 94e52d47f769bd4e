package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// JobManager owns the cron scheduler and every scheduled job of the service.
type JobManager struct {
	cron                *cron.Cron
	stalledChecklistJob *StalledChecklistJob
	logger              *slog.Logger
}

func NewJobManager(stalledChecklistJob *StalledChecklistJob, logger *slog.Logger) *JobManager {
	return &JobManager{
		cron:                cron.New(cron.WithSeconds()),
		stalledChecklistJob: stalledChecklistJob,
		logger:              logger.With("component", "job_manager"),
	}
}

// StartAll registers the jobs and starts the scheduler. Nothing is started
// when a schedule fails to parse.
func (jm *JobManager) StartAll() error {
	if _, err := jm.cron.AddFunc(jm.stalledChecklistJob.schedule, jm.stalledChecklistJob.run); err != nil {
		return fmt.Errorf("failed to schedule stalled checklist job: %w", err)
	}

	jm.cron.Start()
	jm.logger.InfoContext(context.Background(), "Jobs started",
		"stalled_checklist_schedule", jm.stalledChecklistJob.schedule)
	return nil
}

// StopAll stops the scheduler and waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	<-jm.cron.Stop().Done()
	jm.logger.InfoContext(context.Background(), "Jobs stopped")
}
