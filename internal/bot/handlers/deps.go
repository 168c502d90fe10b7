// Package handlers implements the Telegram command handlers.
package handlers

import (
	"context"
	"log/slog"

	"github.com/ykarpenko/hwbot/internal/config"
)

// StatusSource fetches the raw homework status payload on demand.
type StatusSource interface {
	HomeworkStatuses(ctx context.Context, from int64) ([]byte, error)
}

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Statuses StatusSource
}
