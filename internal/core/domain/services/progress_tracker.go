package services

import (
	"time"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/order"
)

// RecomputeResult is the outcome of one progress recomputation.
type RecomputeResult struct {
	Progress checklist.Progress

	// Crossed holds the milestones first reached by this recomputation.
	Crossed []checklist.Milestone

	// Completed is true when the order reached Completed in this call.
	Completed bool
}

// ProgressTracker applies checklist progress to the order status.
//
// Rules, applied in this order:
//   - Progress above 0% moves an Assigned order to InProgress
//   - Milestones above the order's high-water mark are recorded once each
//   - 100% moves the order to Completed
//
// Progress that drops never moves the status back. An order without checklist
// items is rejected with checklist.ErrChecklistIsMissing and left as it is.
type ProgressTracker struct{}

func NewProgressTracker() ProgressTracker {
	return ProgressTracker{}
}

// Recompute must run while the caller holds the order's write lock.
func (ProgressTracker) Recompute(o *order.Order, items []*checklist.Item, now time.Time) (RecomputeResult, error) {
	if err := o.Validate(); err != nil {
		return RecomputeResult{}, err
	}
	if err := o.EnsureChecklistIsOpen(); err != nil {
		return RecomputeResult{}, err
	}

	progress := checklist.ComputeProgress(items)
	if !progress.HasChecklist() {
		return RecomputeResult{}, checklist.ErrChecklistIsMissing
	}
	result := RecomputeResult{Progress: progress}

	if progress.Percentage > 0 && o.Status() == order.Assigned {
		if err := o.TransitionTo(order.InProgress, now); err != nil {
			return RecomputeResult{}, err
		}
	}

	for _, m := range checklist.CrossedMilestones(o.LastMilestone(), progress.Percentage) {
		if o.RecordMilestone(int(m), now) {
			result.Crossed = append(result.Crossed, m)
		}
	}

	if progress.IsComplete() {
		if err := o.TransitionTo(order.Completed, now); err != nil {
			return RecomputeResult{}, err
		}
		result.Completed = true
	}

	return result, nil
}
