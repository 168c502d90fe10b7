// Package config manages application configuration from environment variables,
// config files, and default values.
package config

import (
	"errors"
	"time"
)

var ErrConfiguration = errors.New("configuration error")

// Default values for optional configuration parameters.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	DefaultPracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPracticumTimeout  = 10 * time.Second

	DefaultPollPeriod = 10 * time.Minute
)

// Config defines the application configuration. Values can be set via
// environment variables prefixed with BOT_ (e.g., BOT_PRACTICUM_TOKEN)
// or through config.yaml.
type Config struct {
	Practicum PracticumConfig `mapstructure:"practicum"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Poll      PollConfig      `mapstructure:"poll"`
	Log       LogConfig       `mapstructure:"log"`
}

// PracticumConfig holds settings for the homework status API.
type PracticumConfig struct {
	Token    string        `mapstructure:"token"    validate:"required"`
	Endpoint string        `mapstructure:"endpoint" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout"  validate:"min=1s,max=5m"`
}

// TelegramConfig holds the bot token and the destination chat for notifications.
// ChatID may be negative for group chats, so only the zero value is rejected.
type TelegramConfig struct {
	Token  string `mapstructure:"token"   validate:"required"`
	ChatID int64  `mapstructure:"chat_id" validate:"required"`
}

// PollConfig controls the homework poll cadence.
type PollConfig struct {
	Period time.Duration `mapstructure:"period" validate:"min=1s"`
}

// LogConfig controls log verbosity and output format.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}
