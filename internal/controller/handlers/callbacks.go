package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/controller/state"
	"github.com/bekzodov/jadval-bot/internal/model"
)

func (h *Handlers) handleCallback(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery) {
	chatID := cb.From.ID
	if m := cb.Message.Message; m != nil {
		chatID = m.Chat.ID
	}
	h.ensureUser(chatID)
	h.answerCallback(ctx, b, cb.ID, "")

	data := cb.Data
	switch {
	case data == cbToday:
		h.delivery.SendToday(ctx, chatID)
	case data == cbTomorrow:
		h.delivery.SendTomorrow(ctx, chatID)
	case data == cbWeek:
		h.delivery.SendWeek(ctx, chatID)
	case data == cbWeekImage:
		if err := h.delivery.SendWeekImage(ctx, chatID); err != nil {
			h.logger.Error("week image failed", zap.Int64("chat_id", chatID), zap.Error(err))
			h.sendMessage(ctx, b, chatID, "❌ Rasmni tayyorlashda xato.", h.mainMenuKeyboard(chatID))
		}

	case data == cbSetTime:
		h.states.Set(chatID, state.AwaitingNotifyTime{})
		h.sendMessage(ctx, b, chatID,
			"⏰ Vaqtni HH:MM formatda yuboring (masalan: 07:30).",
			backOnlyKeyboard())

	case data == cbBackMain:
		h.states.Clear(chatID)
		h.sendMessage(ctx, b, chatID, "🔙 Asosiy menyu:", h.mainMenuKeyboard(chatID))

	case data == cbAdminPanel:
		if !h.requireAdmin(ctx, b, chatID) {
			return
		}
		h.sendMessage(ctx, b, chatID, "🔐 Admin panel:", adminPanelKeyboard())

	case data == cbAdminStats:
		if !h.requireAdmin(ctx, b, chatID) {
			return
		}
		h.sendMessage(ctx, b, chatID,
			fmt.Sprintf("📊 Foydalanuvchilar soni: %d", h.users.Count()),
			adminPanelKeyboard())

	case data == cbAdminAdd:
		if !h.requireAdmin(ctx, b, chatID) {
			return
		}
		h.states.Set(chatID, state.ManualAdd{Step: state.AddChooseDay})
		h.sendMessage(ctx, b, chatID,
			"📅 Qaysi kunga qo'shmoqchisiz?",
			daysKeyboard(cbAddDayPrefix))

	case strings.HasPrefix(data, cbAddDayPrefix):
		if !h.requireAdmin(ctx, b, chatID) {
			return
		}
		h.startManualAddForDay(ctx, b, chatID, strings.TrimPrefix(data, cbAddDayPrefix))

	case data == cbAdminRemove:
		if !h.requireAdmin(ctx, b, chatID) {
			return
		}
		h.states.Set(chatID, state.Remove{Step: state.RemoveChooseDay})
		h.sendMessage(ctx, b, chatID,
			"📅 Qaysi kundan o'chirmoqchisiz?",
			daysKeyboard(cbRemoveDayPrefix))

	case strings.HasPrefix(data, cbRemoveDayPrefix):
		if !h.requireAdmin(ctx, b, chatID) {
			return
		}
		h.showRemovalList(ctx, b, chatID, strings.TrimPrefix(data, cbRemoveDayPrefix))

	case strings.HasPrefix(data, cbRemoveItemPrefix):
		if !h.requireAdmin(ctx, b, chatID) {
			return
		}
		h.removeSelectedItem(ctx, b, chatID, strings.TrimPrefix(data, cbRemoveItemPrefix))

	case data == cbAdminUpload:
		if !h.requireAdmin(ctx, b, chatID) {
			return
		}
		h.states.Set(chatID, state.AwaitingUpload{})
		h.sendMessage(ctx, b, chatID,
			"📂 Excel (.xlsx) faylini yoki Google Sheets havolasini yuboring.",
			backOnlyKeyboard())

	case data == cbAdminBroadcast:
		if !h.requireAdmin(ctx, b, chatID) {
			return
		}
		h.states.Set(chatID, state.AwaitingBroadcast{})
		h.sendMessage(ctx, b, chatID,
			"✍️ Yubormoqchi bo'lgan xabaringizni yuboring (matn/rasm/video/hujjat/audio/ovoz).",
			backOnlyKeyboard())
	}
}

func (h *Handlers) startManualAddForDay(ctx context.Context, b *bot.Bot, chatID int64, day string) {
	if !model.IsDay(day) {
		h.sendMessage(ctx, b, chatID, "❌ Noma'lum kun.", backOnlyKeyboard())
		return
	}
	h.states.Set(chatID, state.ManualAdd{Step: state.AddTime, Day: day})
	h.sendMessage(ctx, b, chatID,
		fmt.Sprintf("✍️ %s uchun soatni kiriting (misol: 12:00-13:20).", day),
		backOnlyKeyboard())
}

func (h *Handlers) showRemovalList(ctx context.Context, b *bot.Bot, chatID int64, day string) {
	if !model.IsDay(day) {
		h.sendMessage(ctx, b, chatID, "❌ Noma'lum kun.", backOnlyKeyboard())
		return
	}
	entries, _ := h.schedule.Get(day)
	if len(entries) == 0 {
		h.sendMessage(ctx, b, chatID,
			fmt.Sprintf("%s uchun hech narsa topilmadi.", day),
			backOnlyKeyboard())
		return
	}
	h.states.Set(chatID, state.Remove{Step: state.RemoveChooseItem, Day: day})
	h.sendMessage(ctx, b, chatID,
		fmt.Sprintf("🔹 %s jadvali:", day),
		entriesKeyboard(day, entries))
}

// removeSelectedItem resolves "Day:index" callback data and removes
// the entry. The index may be stale if the schedule changed since the
// keyboard was shown; out-of-range is reported, never applied.
func (h *Handlers) removeSelectedItem(ctx context.Context, b *bot.Bot, chatID int64, arg string) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 {
		h.sendMessage(ctx, b, chatID, "❌ Noto'g'ri tanlov.", backOnlyKeyboard())
		return
	}
	day := parts[0]
	index, err := strconv.Atoi(parts[1])
	if err != nil || !model.IsDay(day) {
		h.sendMessage(ctx, b, chatID, "❌ Noto'g'ri tanlov.", backOnlyKeyboard())
		return
	}

	removed, err := h.schedule.RemoveEntry(day, index)
	if err != nil {
		h.sendMessage(ctx, b, chatID, "❌ Noto'g'ri indeks.", backOnlyKeyboard())
		return
	}
	h.states.Clear(chatID)

	label := removed.Subject
	if label == "" {
		label = removed.Time
	}
	h.sendMessage(ctx, b, chatID,
		fmt.Sprintf("✅ O'chirildi: %s", label),
		adminPanelKeyboard())
}
