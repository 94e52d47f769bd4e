package kafka_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/adapters/in/kafka"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type MockPaymentConfirmer struct{ mock.Mock }

func (m *MockPaymentConfirmer) Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockResourceUploadMarker struct{ mock.Mock }

func (m *MockResourceUploadMarker) Handle(ctx context.Context, cmd commands.MarkResourcesUploadedCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

var topics = kafka.Topics{
	PaymentConfirmed:  "payments.confirmed",
	ResourcesUploaded: "resources.uploaded",
}

func newHandler() (*kafka.Handler, *MockPaymentConfirmer, *MockResourceUploadMarker) {
	confirmer := &MockPaymentConfirmer{}
	marker := &MockResourceUploadMarker{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return kafka.NewHandler(topics, confirmer, marker, logger), confirmer, marker
}

func TestHandler_PaymentConfirmed(t *testing.T) {
	handler, confirmer, marker := newHandler()
	orderID := kernel.NewUUID()
	confirmer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ConfirmPaymentCommand) bool {
		return cmd.OrderID().IsEqual(orderID)
	})).Return(nil).Once()

	err := handler.Handle(context.Background(), &kgo.Record{
		Topic: topics.PaymentConfirmed,
		Value: []byte(`{"order_id":"` + orderID.String() + `"}`),
	})

	require.NoError(t, err)
	confirmer.AssertExpectations(t)
	marker.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestHandler_ResourcesUploaded(t *testing.T) {
	handler, _, marker := newHandler()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	marker.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MarkResourcesUploadedCommand) bool {
		return cmd.OrderID().IsEqual(orderID) && cmd.ItemID().IsEqual(itemID)
	})).Return(nil).Once()

	err := handler.Handle(context.Background(), &kgo.Record{
		Topic: topics.ResourcesUploaded,
		Value: []byte(`{"order_id":"` + orderID.String() + `","item_id":"` + itemID.String() + `"}`),
	})

	require.NoError(t, err)
	marker.AssertExpectations(t)
}

func TestHandler_RedeliveredPaymentIsAcknowledged(t *testing.T) {
	handler, confirmer, _ := newHandler()
	confirmer.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewInvalidTransitionError(order.ReadyForProcessing, order.ReadyForProcessing)).Once()

	err := handler.Handle(context.Background(), &kgo.Record{
		Topic: topics.PaymentConfirmed,
		Value: []byte(`{"order_id":"` + kernel.NewUUID().String() + `"}`),
	})

	assert.NoError(t, err)
}

func TestHandler_Errors(t *testing.T) {
	t.Run("malformed payload", func(t *testing.T) {
		handler, _, _ := newHandler()

		err := handler.Handle(context.Background(), &kgo.Record{Topic: topics.PaymentConfirmed, Value: []byte(`{`)})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid order id", func(t *testing.T) {
		handler, _, _ := newHandler()

		err := handler.Handle(context.Background(), &kgo.Record{
			Topic: topics.ResourcesUploaded,
			Value: []byte(`{"order_id":"nope","item_id":"nope"}`),
		})

		assert.Error(t, err)
	})

	t.Run("unknown topic", func(t *testing.T) {
		handler, _, _ := newHandler()

		err := handler.Handle(context.Background(), &kgo.Record{Topic: "other", Value: []byte(`{}`)})

		assert.ErrorIs(t, err, kafka.ErrUnknownTopic)
	})

	t.Run("command failure is returned", func(t *testing.T) {
		handler, confirmer, _ := newHandler()
		confirmer.On("Handle", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		err := handler.Handle(context.Background(), &kgo.Record{
			Topic: topics.PaymentConfirmed,
			Value: []byte(`{"order_id":"` + kernel.NewUUID().String() + `"}`),
		})

		assert.EqualError(t, err, "db down")
	})
}
