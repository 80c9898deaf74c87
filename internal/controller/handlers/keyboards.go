package handlers

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/bekzodov/jadval-bot/internal/controller/keyboard"
	"github.com/bekzodov/jadval-bot/internal/model"
)

func (h *Handlers) mainMenuKeyboard(chatID int64) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder().
		Row(
			keyboard.Button("📅 Bugungi", cbToday),
			keyboard.Button("📅 Ertangi", cbTomorrow),
		).
		Row(
			keyboard.Button("📆 Haftalik", cbWeek),
			keyboard.Button("🖼 Haftalik rasm", cbWeekImage),
		).
		Row(keyboard.Button("⏰ Eslatma", cbSetTime))
	if h.users.IsAdmin(chatID) {
		b.Row(keyboard.Button("🔐 Admin panel", cbAdminPanel))
	}
	return b.Build()
}

func adminPanelKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("➕ Qo'lda qo'shish", cbAdminAdd)).
		Row(keyboard.Button("📥 Excel/Google yuklash", cbAdminUpload)).
		Row(keyboard.Button("🗑 O'chirish", cbAdminRemove)).
		Row(keyboard.Button("📊 Statistika", cbAdminStats)).
		Row(keyboard.Button("📨 Xabar yuborish", cbAdminBroadcast)).
		Row(keyboard.Button("⬅️ Orqaga", cbBackMain)).
		Build()
}

// daysKeyboard lists the seven canonical days, one per row, with the
// callback data prefixed for the current flow.
func daysKeyboard(prefix string) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for _, day := range model.Days {
		b.Row(keyboard.Button(day, prefix+day))
	}
	return b.Row(keyboard.Button("⬅️ Orqaga", cbBackMain)).Build()
}

// entriesKeyboard lists a day's entries for removal selection.
func entriesKeyboard(day string, entries []model.Entry) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for i, e := range entries {
		label := e.Subject
		if label == "" {
			label = e.Time
		}
		b.Row(keyboard.Button(
			fmt.Sprintf("%d. %s", i+1, label),
			fmt.Sprintf("%s%s:%d", cbRemoveItemPrefix, day, i),
		))
	}
	return b.Row(keyboard.Button("⬅️ Orqaga", cbBackMain)).Build()
}

func backOnlyKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("⬅️ Orqaga", cbBackMain)).
		Build()
}
