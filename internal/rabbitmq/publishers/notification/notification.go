package notification

import (
	"context"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/rabbitmq"
	"assistant/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes committed notification events to an exchange. The
// checker treats publishing as fire-and-forget, so errors are returned for
// logging but never roll anything back.
type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishNotification(ctx context.Context, event reminder.NotificationEvent) error {
	msg := schema.Notification{
		ReminderID: int64(event.ReminderID),
		UserID:     string(event.UserID),
		Tier:       event.Tier.String(),
		Title:      event.Title,
		FiredAt:    event.FiredAt.Std(),
	}
	body, err := msg.Marshal()
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("reminderID", event.ReminderID),
		logging.Entry("tier", event.Tier),
	)
	return nil
}
