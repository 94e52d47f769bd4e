package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.PendingPayment:     "pending_payment",
		order.PendingResources:   "pending_resources",
		order.ReadyForProcessing: "ready_for_processing",
		order.Assigned:           "assigned",
		order.InProgress:         "in_progress",
		order.Completed:          "completed",
		order.Unknown:            "unknown",
		order.Status(99):         "unknown",
	}

	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.ParseStatus("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.AllStatuses() {
		require.NoError(t, status.Validate())
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7)} {
		err := status.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
	}
}

func TestStatus_LegalEdges(t *testing.T) {
	edges := []struct {
		from order.Status
		to   order.Status
	}{
		{order.PendingPayment, order.PendingResources},
		{order.PendingPayment, order.ReadyForProcessing},
		{order.PendingResources, order.ReadyForProcessing},
		{order.ReadyForProcessing, order.Assigned},
		{order.Assigned, order.InProgress},
		{order.InProgress, order.Completed},
	}

	for _, e := range edges {
		t.Run(fmt.Sprintf("%s->%s", e.from, e.to), func(t *testing.T) {
			next, err := e.from.TransitionTo(e.to)

			require.NoError(t, err)
			assert.Equal(t, e.to, next)
			assert.True(t, e.from.CanTransitionTo(e.to))
		})
	}
}

func TestStatus_GraphClosure(t *testing.T) {
	all := append([]order.Status{order.Unknown}, order.AllStatuses()...)

	for _, from := range all {
		for _, to := range all {
			if from.CanTransitionTo(to) {
				continue
			}
			t.Run(fmt.Sprintf("%s->%s", from, to), func(t *testing.T) {
				next, err := from.TransitionTo(to)

				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, from, next, "status must be unchanged")

				var transitionErr *errs.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, from.String(), transitionErr.From)
				assert.Equal(t, to.String(), transitionErr.To)
			})
		}
	}
}

func TestStatus_IsAcyclic(t *testing.T) {
	rank := make(map[order.Status]int)
	for i, status := range order.AllStatuses() {
		rank[status] = i
	}

	for _, from := range order.AllStatuses() {
		for _, to := range from.Successors() {
			assert.Greater(t, rank[to], rank[from], "%s -> %s goes backwards", from, to)
		}
	}
	assert.True(t, order.Completed.IsTerminal())
	assert.Empty(t, order.Completed.Successors())
}

func TestStatus_ValidateCanHaveAssignee(t *testing.T) {
	t.Run("statuses before assignment reject an assignee", func(t *testing.T) {
		for _, s := range []order.Status{order.PendingPayment, order.PendingResources, order.ReadyForProcessing} {
			require.Error(t, s.ValidateCanHaveAssignee(true), s.String())
			require.NoError(t, s.ValidateCanHaveAssignee(false), s.String())
		}
	})

	t.Run("assigned statuses require an assignee", func(t *testing.T) {
		for _, s := range []order.Status{order.Assigned, order.InProgress, order.Completed} {
			require.NoError(t, s.ValidateCanHaveAssignee(true), s.String())
			require.Error(t, s.ValidateCanHaveAssignee(false), s.String())
		}
	})
}
