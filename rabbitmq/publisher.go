package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"storefront-service/models"
)

// Publisher announces pending orders on the fulfillment queue.
type Publisher struct {
	pool      *ChannelPool
	queueName string
	logger    *slog.Logger
}

func NewPublisher(pool *ChannelPool, queueName string, logger *slog.Logger) *Publisher {
	return &Publisher{pool: pool, queueName: queueName, logger: logger}
}

// PublishOrder sends the pending order as a persistent JSON message.
func (p *Publisher) PublishOrder(ctx context.Context, order models.Order) error {
	ch, err := p.pool.Get()
	if err != nil {
		return fmt.Errorf("failed to get channel from pool: %w", err)
	}
	defer p.pool.Put(ch)

	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = ch.PublishWithContext(ctx,
		"",          // default exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish order: %w", err)
	}

	p.logger.Info("published pending order", "queue", p.queueName, "session_id", order.StripeSessionID)
	return nil
}
