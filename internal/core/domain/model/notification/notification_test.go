package notification_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func TestNewNotification(t *testing.T) {
	admin := kernel.NewUUID()

	n, err := notification.NewNotification(kernel.NewUUID(), notification.KindProgress50, kernel.NewUUID(),
		[]kernel.UUID{admin, admin}, "Order EC-1 is 50% complete", now)

	require.NoError(t, err)
	assert.Equal(t, notification.KindProgress50, n.Kind())
	assert.Len(t, n.Recipients(), 1, "duplicate recipients collapse")
	assert.False(t, n.Read())
	assert.Equal(t, now, n.CreatedAt())
}

func TestNewNotification_Validation(t *testing.T) {
	t.Run("requires recipients", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), notification.KindCompleted, kernel.NewUUID(),
			nil, "done", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), notification.Kind("progress_33"), kernel.NewUUID(),
			[]kernel.UUID{kernel.NewUUID()}, "odd", now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNotification_MarkRead(t *testing.T) {
	recipient := kernel.NewUUID()
	n, err := notification.NewNotification(kernel.NewUUID(), notification.KindAssigned, kernel.NewUUID(),
		[]kernel.UUID{recipient}, "You have been assigned order EC-1", now)
	require.NoError(t, err)

	err = n.MarkRead(kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.False(t, n.Read())

	require.NoError(t, n.MarkRead(recipient))
	require.NoError(t, n.MarkRead(recipient))
	assert.True(t, n.Read())
}

func TestNotification_ZeroValue(t *testing.T) {
	var n notification.Notification
	require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
}
