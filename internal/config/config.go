package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqNotificationExchange string `env:"RABBITMQ_NOTIFICATION_EXCHANGE" envDefault:"assistant.notifications"`
	RabbitmqNotificationQueue    string `env:"RABBITMQ_NOTIFICATION_QUEUE" envDefault:"assistant.notifications.stream"`

	HTTPAddress    string   `env:"HTTP_ADDRESS" envDefault:"0.0.0.0:8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	// All natural-time phrases are interpreted in this civil timezone, no
	// matter where the process runs.
	LocalTimezone string `env:"LOCAL_TIMEZONE" envDefault:"America/Caracas"`

	TelegramBaseURL        url.URL       `env:"TELEGRAM_BASE_URL" envDefault:"https://api.telegram.org"`
	TelegramBotToken       string        `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramChatID         int64         `env:"TELEGRAM_CHAT_ID,required"`
	TelegramRequestTimeout time.Duration `env:"TELEGRAM_REQUEST_TIMEOUT" envDefault:"15s"`

	RemindersCheckPeriod  time.Duration `env:"REMINDERS_CHECK_PERIOD" envDefault:"30s"`
	RemindersCheckBackoff time.Duration `env:"REMINDERS_CHECK_BACKOFF" envDefault:"60s"`
}

func Load() (*Config, error) {
	// Local development convenience, ignored when the file is absent.
	godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
