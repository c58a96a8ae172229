package deps

import (
	"context"
	"sync"
	"time"

	"assistant/internal/config"
	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/event"
	dl "assistant/internal/core/domain/logging"
	drl "assistant/internal/core/domain/rate_limiter"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/db"
	interactionanalyzer "assistant/internal/implementations/interaction_analyzer"
	"assistant/internal/implementations/logging"
	messageparser "assistant/internal/implementations/message_parser"
	naturaltimeresolver "assistant/internal/implementations/natural_time_resolver"
	ratelimiter "assistant/internal/implementations/rate_limiter"
	telegrammessagesender "assistant/internal/implementations/telegram_message_sender"
	"assistant/internal/rabbitmq"
	notificationpublisher "assistant/internal/rabbitmq/publishers/notification"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Clock *dt.Clock
	Now   func() time.Time

	ReminderRepository reminder.Repository
	EventRepository    event.Repository

	RateLimiter drl.RateLimiter

	MessageSender       reminder.Sender
	NotificationChannel *rabbitmq.Channel
	EventPublisher      reminder.EventPublisher

	NaturalTimeResolver reminder.NaturalTimeResolver
	MessageParser       reminder.MessageParser
	InteractionAnalyzer *interactionanalyzer.Analyzer
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.initClock()

	deps.ReminderRepository = db.NewPgxReminderRepository(deps.DB)
	deps.EventRepository = db.NewPgxEventRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.MessageSender = telegrammessagesender.New(
		deps.Config.TelegramBaseURL,
		deps.Config.TelegramBotToken,
		deps.Config.TelegramChatID,
		deps.Config.TelegramRequestTimeout,
	)

	closeNotificationPublisher := deps.initRabbitmqNotificationPublisher()

	deps.NaturalTimeResolver = naturaltimeresolver.New()
	deps.MessageParser = messageparser.New()
	deps.InteractionAnalyzer = interactionanalyzer.New()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeNotificationPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initClock() {
	clock, err := dt.NewClock(deps.Config.LocalTimezone)
	if err != nil {
		panic(err)
	}
	deps.Clock = clock
	deps.Now = func() time.Time { return time.Now().UTC() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqNotificationPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqNotificationExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}
	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqNotificationQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.QueueBind(
		deps.Config.RabbitmqNotificationQueue,
		deps.Config.RabbitmqNotificationQueue,
		deps.Config.RabbitmqNotificationExchange,
		false,
		nil,
	); err != nil {
		deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.NotificationChannel = rabbitmqChannel
	deps.EventPublisher = notificationpublisher.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqNotificationExchange,
		deps.Config.RabbitmqNotificationQueue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down notification publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Notification publisher shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}
