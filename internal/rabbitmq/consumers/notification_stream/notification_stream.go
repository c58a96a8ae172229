package notificationstream

import (
	"context"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/rabbitmq"
	"assistant/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// Broadcaster fans a consumed notification out to connected clients.
type Broadcaster interface {
	Broadcast(notification schema.Notification)
}

// Consumer drains the notification queue and hands every message to the
// broadcaster. Malformed messages are acked and dropped; there is no point
// redelivering them.
type Consumer struct {
	log         logging.Logger
	channel     *rabbitmq.Channel
	queue       string
	broadcaster Broadcaster
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	broadcaster Broadcaster,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if broadcaster == nil {
		panic(e.NewNilArgumentError("broadcaster"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, broadcaster: broadcaster}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			msg := &schema.Notification{}
			if err := msg.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal notification.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got notification for streaming.",
				logging.Entry("notification", msg),
			)
			c.broadcaster.Broadcast(*msg)
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
