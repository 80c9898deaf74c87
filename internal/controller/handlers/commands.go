package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleStart greets the user and shows the main menu. Starting over
// also discards any half-finished flow.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	h.ensureUser(chatID)
	h.states.Clear(chatID)
	h.sendMessage(ctx, b, chatID,
		"👋 Assalomu alaykum! Asosiy menyu:",
		h.mainMenuKeyboard(chatID))
}

// HandleUpdate is the default handler for everything that is not a
// registered command: flow text input, attachments and inline buttons.
func (h *Handlers) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, b, update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, b, update.Message)
	}
}
