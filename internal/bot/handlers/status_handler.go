package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/ykarpenko/hwbot/internal/practicum"
	"github.com/ykarpenko/hwbot/internal/verdict"
)

// NewStatusHandler returns a handler for the /status command. It performs an
// on-demand check over the full submission history (from_date=0) and replies
// with the latest verdict. It never touches the poller's dedup state.
func NewStatusHandler(deps HandlerDeps) bot.HandlerFunc {
	return statusHandler{deps}.Handle
}

type statusHandler struct {
	deps HandlerDeps
}

func (h statusHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "status")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Status handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /status command", "chat_id", update.Message.Chat.ID, "user_id", update.Message.From.ID)

	text := h.currentStatus(ctx)
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: update.Message.Chat.ID, Text: text})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send status reply", "error", err, "chat_id", update.Message.Chat.ID)
	}
}

func (h statusHandler) currentStatus(ctx context.Context) string {
	log := h.deps.Logger.With("handler", "status")

	body, err := h.deps.Statuses.HomeworkStatuses(ctx, 0)
	if err == nil {
		var hw *practicum.Homework
		if hw, err = practicum.LatestHomework(body); err == nil {
			var msg string
			if msg, err = verdict.Format(hw); err == nil {
				return msg
			}
		}
	}

	if practicum.IsNoHomework(err) {
		return "No homework under review yet."
	}

	log.ErrorContext(ctx, "On-demand status check failed", "kind", practicum.KindOf(err).String(), "error", err)
	return "Could not fetch the review status right now, try again later."
}
