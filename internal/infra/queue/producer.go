package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/farmareach/internal/entity"
)

// Publisher is the part of *amqp.Channel the producer uses.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type ActivityProducer struct {
	ch       Publisher
	exchange string
}

func NewActivityProducer(ch Publisher, exchange string) *ActivityProducer {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &ActivityProducer{ch: ch, exchange: exchange}
}

func RoutingKey(level entity.ActivityLevel) string {
	return "activity." + string(level)
}

func (p *ActivityProducer) PublishActivity(ctx context.Context, entry entity.ActivityEntry) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode activity: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		RoutingKey(entry.Level),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    entry.ID,
			Timestamp:    entry.At,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}
	return nil
}
