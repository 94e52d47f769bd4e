package checklist

import "errors"

// ErrChecklistIsIncomplete is returned when an order is closed before every
// required item is done.
var ErrChecklistIsIncomplete = errors.New("checklist has open required items")

// ErrChecklistIsMissing is returned for progress work on an order that has no
// checklist items, which is what a failed generation leaves behind.
var ErrChecklistIsMissing = errors.New("order has no checklist")

// Milestone is a progress threshold that is announced once per order.
type Milestone int

const (
	Milestone25  Milestone = 25
	Milestone50  Milestone = 50
	Milestone75  Milestone = 75
	Milestone100 Milestone = 100
)

// Milestones returns the thresholds in ascending order.
func Milestones() []Milestone {
	return []Milestone{Milestone25, Milestone50, Milestone75, Milestone100}
}

// Progress is the completion breakdown of one order's checklist.
type Progress struct {
	TotalItems        int
	RequiredItems     int
	CompletedItems    int
	CompletedRequired int
	Percentage        int
}

// HasChecklist reports whether any item exists.
func (p Progress) HasChecklist() bool {
	return p.TotalItems > 0
}

// IsComplete reports whether the checklist exists and every required item is done.
func (p Progress) IsComplete() bool {
	return p.HasChecklist() && p.Percentage == 100
}

// ComputeProgress counts required items only. The percentage is truncated to
// an integer; a checklist with no required items is 100% done. No items at all
// is 0%: the checklist is missing, not finished.
func ComputeProgress(items []*Item) Progress {
	var p Progress
	for _, item := range items {
		p.TotalItems++
		if item.Completed() {
			p.CompletedItems++
		}
		if item.IsOptional() {
			continue
		}
		p.RequiredItems++
		if item.Completed() {
			p.CompletedRequired++
		}
	}

	if p.TotalItems == 0 {
		return p
	}
	if p.RequiredItems == 0 {
		p.Percentage = 100
		return p
	}
	p.Percentage = p.CompletedRequired * 100 / p.RequiredItems
	return p
}

// CrossedMilestones returns the milestones above alreadyReached that percentage
// has reached, in ascending order.
func CrossedMilestones(alreadyReached int, percentage int) []Milestone {
	var crossed []Milestone
	for _, m := range Milestones() {
		if int(m) > alreadyReached && percentage >= int(m) {
			crossed = append(crossed, m)
		}
	}
	return crossed
}
