package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"shelfspot/internal/products"
	"shelfspot/internal/products/messaging"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const consumerTag = "catalog-notifications"

type Consumer struct {
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
}

func NewConsumer(conn *amqp.Connection, queue string, logger *zap.Logger) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := messaging.DeclareQueue(ch, queue); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &Consumer{
		channel: ch,
		queue:   queue,
		logger:  logger,
	}, nil
}

func (c *Consumer) Listen(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		c.queue,
		consumerTag,
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume queue %q: %w", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}

			if err := c.handleMessage(msg.Body); err != nil {
				// undecodable payloads would be redelivered forever
				c.logger.Error("drop message", zap.Error(err), zap.Uint64("delivery_tag", msg.DeliveryTag))
				_ = msg.Nack(false, false)
				continue
			}

			_ = msg.Ack(false)
		}
	}
}

func (c *Consumer) handleMessage(body []byte) error {
	var event products.ProductEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}
	if event.EventType == "" || event.ProductID == "" {
		return fmt.Errorf("incomplete event: %s", body)
	}

	fields := []zap.Field{
		zap.String("event_type", event.EventType),
		zap.String("product_id", event.ProductID),
		zap.Time("timestamp", event.Timestamp),
	}
	if event.Name != "" {
		fields = append(fields, zap.String("name", event.Name))
	}
	if event.Price != nil {
		fields = append(fields, zap.String("price", event.Price.String()))
	}
	c.logger.Info("catalog notification", fields...)

	return nil
}

func (c *Consumer) Close() error {
	return c.channel.Close()
}
