package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
)

type StalledOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetStalledOrdersQuery) ([]queries.GetStalledOrdersQueryResponse, error)
}

// StalledChecklistJob reports assigned orders that still have no checklist
// after the configured threshold. Generation is left to an operator.
type StalledChecklistJob struct {
	finder    StalledOrdersFinder
	schedule  string
	threshold time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// NewStalledChecklistJob creates the report job. schedule is a six-field cron
// expression (seconds first).
func NewStalledChecklistJob(
	finder StalledOrdersFinder,
	schedule string,
	threshold time.Duration,
	logger *slog.Logger,
) *StalledChecklistJob {
	return &StalledChecklistJob{
		finder:    finder,
		schedule:  schedule,
		threshold: threshold,
		now:       time.Now,
		logger:    logger.With("component", "stalled_checklist_job"),
	}
}

// Run performs one pass and returns the number of stalled orders found.
func (j *StalledChecklistJob) Run(ctx context.Context) (int, error) {
	query, err := queries.NewGetStalledOrdersQuery(j.now().Add(-j.threshold))
	if err != nil {
		return 0, err
	}

	stalled, err := j.finder.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, o := range stalled {
		j.logger.WarnContext(ctx, "Order assigned without checklist",
			"order_id", o.ID.String(),
			"order_number", o.Number,
			"assigned_to", o.AssignedTo.String(),
			"stalled_since", o.UpdatedAt)
	}
	return len(stalled), nil
}

func (j *StalledChecklistJob) run() {
	ctx := context.Background()
	if _, err := j.Run(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Stalled checklist job failed", "error", err)
	}
}
