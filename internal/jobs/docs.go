// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs run on github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// StalledChecklistJob looks for orders that were assigned but never received a
// checklist, which happens when generation failed during assignment. It only
// reports them; an operator re-runs generation through the API or the CLI.
//
// # Usage
//
//	job := jobs.NewStalledChecklistJob(stalledHandler, "0 */15 * * * *", 30*time.Minute, logger)
//	jobManager := jobs.NewJobManager(job, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
