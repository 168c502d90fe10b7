// Package main contains the entrypoint for the homework status bot.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"

	"github.com/ykarpenko/hwbot/internal/bot"
	"github.com/ykarpenko/hwbot/internal/bot/handlers"
	"github.com/ykarpenko/hwbot/internal/config"
	"github.com/ykarpenko/hwbot/internal/logger"
	"github.com/ykarpenko/hwbot/internal/poller"
	"github.com/ykarpenko/hwbot/internal/practicum"
	"github.com/ykarpenko/hwbot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all components, starts the orchestrator, and returns an
// exit code. The only proactive exit is the configuration check, which
// happens before anything touches the network.
func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration check failed, aborting", "error", err)
		return 1
	}

	log := logger.New(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	client := practicum.NewClient(cfg.Practicum, log)

	hDeps := handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Statuses: client,
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
	}
	tg, err := telegram.NewBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	notifier := telegram.NewNotifier(tg, cfg.Telegram.ChatID, log)

	// from_date lower bound is fixed to the process start time; only
	// submissions reviewed after startup produce notifications.
	p := poller.New(client, notifier, time.Now().Unix(), log)

	sched, err := bot.NewScheduler(log, cfg.Poll.Period, p.Tick)
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.New(log, tg, sched)

	log.Info("Starting bot...", "poll_period", cfg.Poll.Period, "chat_id", cfg.Telegram.ChatID)
	runErr := app.Run(ctx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
