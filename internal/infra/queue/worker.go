package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/entity"
)

// Consumer is the part of *amqp.Channel the worker uses.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type ActivityHandler func(ctx context.Context, entry entity.ActivityEntry) error

// Worker drains the activity queue. Malformed messages are dead-lettered;
// handler failures are dead-lettered too, there is no retry.
type Worker struct {
	ch     Consumer
	handle ActivityHandler
	logger *zap.Logger
}

func NewWorker(ch Consumer, handle ActivityHandler, logger *zap.Logger) *Worker {
	return &Worker{ch: ch, handle: handle, logger: logger}
}

// Run consumes until ctx is done or the delivery channel closes.
func (w *Worker) Run(ctx context.Context, queueName string) error {
	msgs, err := w.ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	w.logger.Info("worker waiting", zap.String("queue", queueName))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.process(ctx, d)
		}
	}
}

func (w *Worker) process(ctx context.Context, d amqp.Delivery) {
	var entry entity.ActivityEntry
	if err := json.Unmarshal(d.Body, &entry); err != nil {
		w.logger.Warn("invalid activity message", zap.String("message_id", d.MessageId), zap.Error(err))
		_ = d.Nack(false, false)
		return
	}

	if err := w.handle(ctx, entry); err != nil {
		w.logger.Error("activity handler failed", zap.String("activity_id", entry.ID), zap.Error(err))
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}
