// Package telegram handles the Telegram transport: bot construction,
// handler registration, and the outbound notifier.
package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// messageSender is the slice of *bot.Bot the notifier needs.
type messageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Notifier sends notification text to a fixed chat. Delivery failures are
// logged and reported through the return value; they never propagate.
type Notifier struct {
	sender messageSender
	chatID int64
	log    *slog.Logger
}

// NewNotifier creates a Notifier bound to the configured chat ID.
func NewNotifier(sender messageSender, chatID int64, log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{
		sender: sender,
		chatID: chatID,
		log:    log.With("component", "notifier"),
	}
}

// Send delivers text to the chat and reports whether delivery succeeded.
func (n *Notifier) Send(ctx context.Context, text string) bool {
	_, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		n.log.ErrorContext(ctx, "Failed to send message", "chat_id", n.chatID, "error", err)
		return false
	}

	n.log.DebugContext(ctx, "Message sent", "chat_id", n.chatID, "text", text)
	return true
}
