package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func productRef(t *testing.T, id int64) kernel.ProductRef {
	t.Helper()
	ref, err := kernel.NewProductRef(kernel.ProductKindPackage, id)
	require.NoError(t, err)
	return ref
}

func newOrder(t *testing.T, products ...int64) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(1000)
	require.NoError(t, err)

	items := make([]*order.Item, 0, len(products))
	for _, p := range products {
		item, err := order.RestoreItem(kernel.NewUUID(), productRef(t, p), 1, price, true)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), items, now)
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, staff kernel.UUID, products ...int64) *order.Order {
	t.Helper()
	o := newOrder(t, products...)
	require.NoError(t, o.ConfirmPayment(now))
	require.NoError(t, o.Assign(staff, now))
	o.PullEvents()
	return o
}

func template(t *testing.T, product int64, name string, index int, optional bool) *checklist.TemplateItem {
	t.Helper()
	tpl, err := checklist.NewTemplateItem(kernel.NewUUID(), productRef(t, product), name, "", index, optional, 0)
	require.NoError(t, err)
	return tpl
}

func checklistItem(t *testing.T, orderID kernel.UUID, index int, optional bool) *checklist.Item {
	t.Helper()
	item, err := checklist.NewItem(kernel.NewUUID(), orderID, nil, "step", index, optional)
	require.NoError(t, err)
	return item
}
