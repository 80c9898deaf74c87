package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ensureUser registers a first-time chat and installs its default
// reminder. Returns whether the user was just created.
func (h *Handlers) ensureUser(chatID int64) bool {
	u, created := h.users.Ensure(chatID)
	if created {
		if err := h.reminders.Schedule(chatID, u.NotifyTime); err != nil {
			h.logger.Warn("default reminder not installed",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
		}
	}
	return created
}

// requireAdmin rejects non-administrators with no state change.
func (h *Handlers) requireAdmin(ctx context.Context, b *bot.Bot, chatID int64) bool {
	if h.users.IsAdmin(chatID) {
		return true
	}
	h.sendMessage(ctx, b, chatID, "❌ Bu amal faqat adminlar uchun.", nil)
	return false
}

func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, kb models.ReplyMarkup) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: kb,
	})
	if err != nil {
		h.logger.Error("failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func (h *Handlers) answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
	if err != nil {
		h.logger.Error("failed to answer callback", zap.Error(err))
	}
}
