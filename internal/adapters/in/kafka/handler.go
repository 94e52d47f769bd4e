package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/twmb/franz-go/pkg/kgo"
)

// PaymentConfirmed is published by the payment collaborator once an order is paid.
type PaymentConfirmed struct {
	OrderID string `json:"order_id"`
}

// ResourcesUploaded is published by the resource collaborator for each order
// item whose files are complete.
type ResourcesUploaded struct {
	OrderID string `json:"order_id"`
	ItemID  string `json:"item_id"`
}

type PaymentConfirmer interface {
	Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) error
}

type ResourceUploadMarker interface {
	Handle(ctx context.Context, cmd commands.MarkResourcesUploadedCommand) error
}

// ErrUnknownTopic is returned for records from a topic the handler was not
// configured with.
var ErrUnknownTopic = errors.New("unknown topic")

// Topics names the topics the handler understands.
type Topics struct {
	PaymentConfirmed  string
	ResourcesUploaded string
}

// Handler turns collaborator events into commands.
type Handler struct {
	topics         Topics
	confirmPayment PaymentConfirmer
	markUploaded   ResourceUploadMarker
	logger         *slog.Logger
}

func NewHandler(
	topics Topics,
	confirmPayment PaymentConfirmer,
	markUploaded ResourceUploadMarker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		topics:         topics,
		confirmPayment: confirmPayment,
		markUploaded:   markUploaded,
		logger:         logger.With("component", "KafkaHandler"),
	}
}

// Handle processes one record. Redelivered events are acknowledged: a payment
// confirmed twice fails the transition and is only logged.
func (h *Handler) Handle(ctx context.Context, record *kgo.Record) error {
	var err error
	switch record.Topic {
	case h.topics.PaymentConfirmed:
		err = h.handlePaymentConfirmed(ctx, record.Value)
	case h.topics.ResourcesUploaded:
		err = h.handleResourcesUploaded(ctx, record.Value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTopic, record.Topic)
	}

	if errors.Is(err, errs.ErrInvalidTransition) {
		h.logger.Info("event already applied",
			"topic", record.Topic,
			"offset", record.Offset,
			"reason", err)
		return nil
	}
	return err
}

// IsRetryable reports whether a record that failed with err may succeed when
// handled again. Malformed events and events for unknown orders never will.
func IsRetryable(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, ErrUnknownTopic),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrPermissionDenied):
		return false
	default:
		return true
	}
}

func (h *Handler) handlePaymentConfirmed(ctx context.Context, value []byte) error {
	var evt PaymentConfirmed
	if err := json.Unmarshal(value, &evt); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("payment confirmed event", err)
	}
	orderID, err := kernel.UUIDFromString(evt.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID)
	if err != nil {
		return err
	}
	return h.confirmPayment.Handle(ctx, cmd)
}

func (h *Handler) handleResourcesUploaded(ctx context.Context, value []byte) error {
	var evt ResourcesUploaded
	if err := json.Unmarshal(value, &evt); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("resources uploaded event", err)
	}
	orderID, err := kernel.UUIDFromString(evt.OrderID)
	if err != nil {
		return err
	}
	itemID, err := kernel.UUIDFromString(evt.ItemID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkResourcesUploadedCommand(orderID, itemID)
	if err != nil {
		return err
	}
	return h.markUploaded.Handle(ctx, cmd)
}
