package consumers

import (
	"context"

	"assistant/internal/app/deps"
	dl "assistant/internal/core/domain/logging"
	notificationbroadcaster "assistant/internal/implementations/notification_broadcaster"
	notificationstream "assistant/internal/rabbitmq/consumers/notification_stream"
)

func initNotificationStreamConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqNotificationQueue
	notificationStreamConsumer := notificationstream.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		notificationbroadcaster.NewSSE(deps.Logger, deps.SseServer),
	)
	if err = notificationStreamConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownNotificationStreamConsumer := initNotificationStreamConsumer(deps)

	return func() {
		shutdownNotificationStreamConsumer()
	}
}
