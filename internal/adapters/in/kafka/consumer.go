// Package kafka consumes the payment and resource collaborators' events.
package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/twmb/franz-go/pkg/kgo"
)

const commitTimeout = 10 * time.Second

// RecordHandler processes one record.
type RecordHandler interface {
	Handle(ctx context.Context, record *kgo.Record) error
}

// Consumer polls the collaborator topics in one consumer group and passes
// every record to the handler.
//
// Offsets are committed by hand once a poll has been processed. A record that
// failed with a retryable error is handled again with exponential backoff
// until it succeeds or ctx is cancelled, so its offset is never committed
// while it is still owed. Records that can never succeed are logged and
// skipped.
type Consumer struct {
	client  *kgo.Client
	handler RecordHandler
	backoff func() backoff.BackOff
	logger  *slog.Logger
}

func NewConsumer(brokers []string, group string, topics Topics, handler RecordHandler, logger *slog.Logger) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumerGroup(group),
		kgo.ConsumeTopics(topics.PaymentConfirmed, topics.ResourcesUploaded),
		kgo.BlockRebalanceOnPoll(),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		client:  client,
		handler: handler,
		backoff: newRetryPolicy,
		logger:  logger.With("component", "KafkaConsumer"),
	}, nil
}

func newRetryPolicy() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 30 * time.Second
	policy.MaxElapsedTime = 0
	return policy
}

// Run polls until ctx is cancelled or the client is closed.
func (c *Consumer) Run(ctx context.Context) {
	c.logger.Info("consumer started")
	defer c.logger.Info("consumer stopped")

	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.logger.Error("fetch failed", "topic", topic, "partition", partition, "error", err)
		})

		processed := c.processAll(ctx, fetches.Records())
		if len(processed) > 0 {
			commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
			if err := c.client.CommitRecords(commitCtx, processed...); err != nil {
				c.logger.Error("failed to commit offsets", "error", err)
			}
			cancel()
		}

		c.client.AllowRebalance()
		if ctx.Err() != nil {
			return
		}
	}
}

// processAll handles records in order and returns the ones whose offsets may
// be committed. It stops at the first record still owed when ctx is cancelled.
func (c *Consumer) processAll(ctx context.Context, records []*kgo.Record) []*kgo.Record {
	processed := make([]*kgo.Record, 0, len(records))
	for _, record := range records {
		if err := c.process(ctx, record); err != nil {
			if IsRetryable(err) {
				return processed
			}
			c.logger.Error("skipping record",
				"topic", record.Topic,
				"partition", record.Partition,
				"offset", record.Offset,
				"error", err)
		}
		processed = append(processed, record)
	}
	return processed
}

func (c *Consumer) process(ctx context.Context, record *kgo.Record) error {
	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := c.handler.Handle(ctx, record)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		c.logger.Warn("failed to process record, retrying",
			"topic", record.Topic,
			"partition", record.Partition,
			"offset", record.Offset,
			"attempt", attempt,
			"error", err)
		return err
	}, backoff.WithContext(c.backoff(), ctx))
}

func (c *Consumer) Close() {
	c.client.Close()
}
