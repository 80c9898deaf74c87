package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/controller/state"
	"github.com/bekzodov/jadval-bot/internal/formatting"
	"github.com/bekzodov/jadval-bot/internal/ingest"
	"github.com/bekzodov/jadval-bot/internal/model"
)

// handleMessage dispatches an inbound message against the user's
// current flow. Invalid input for the current step re-prompts and
// never advances; every failure path ends with a notice to the user.
func (h *Handlers) handleMessage(ctx context.Context, b *bot.Bot, msg *models.Message) {
	chatID := msg.Chat.ID
	h.ensureUser(chatID)
	text := strings.TrimSpace(msg.Text)

	switch flow := h.states.Get(chatID).(type) {
	case state.AwaitingNotifyTime:
		h.handleNotifyTimeInput(ctx, b, chatID, text)
	case state.AwaitingUpload:
		h.handleUploadInput(ctx, b, msg, text)
	case state.ManualAdd:
		h.handleManualAddInput(ctx, b, chatID, text, flow)
	case state.Remove:
		h.handleRemoveInput(ctx, b, chatID, text, flow)
	case state.AwaitingBroadcast:
		h.handleBroadcastCapture(ctx, b, msg)
	default:
		h.sendMessage(ctx, b, chatID, "📋 Iltimos menyudan tanlang:", h.mainMenuKeyboard(chatID))
	}
}

// --- Notify time flow ---

func (h *Handlers) handleNotifyTimeInput(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if err := h.reminders.Schedule(chatID, text); err != nil {
		h.sendMessage(ctx, b, chatID,
			"❌ Vaqt formati noto'g'ri. Misol: 07:30",
			backOnlyKeyboard())
		return
	}
	h.users.SetNotifyTime(chatID, text)
	h.states.Clear(chatID)
	h.sendMessage(ctx, b, chatID,
		fmt.Sprintf("✅ Eslatma vaqti o'rnatildi: %s", text),
		h.mainMenuKeyboard(chatID))
}

// --- Upload flow ---

func (h *Handlers) handleUploadInput(ctx context.Context, b *bot.Bot, msg *models.Message, text string) {
	chatID := msg.Chat.ID

	switch {
	case msg.Document != nil:
		h.importDocument(ctx, b, chatID, msg.Document)
	case strings.HasPrefix(text, "http"):
		h.importFromURL(ctx, b, chatID, text)
	default:
		h.sendMessage(ctx, b, chatID,
			"📂 .xlsx fayl yoki Google Sheets havolasini yuboring.",
			backOnlyKeyboard())
	}
}

func (h *Handlers) importDocument(ctx context.Context, b *bot.Bot, chatID int64, doc *models.Document) {
	if doc.FileSize > h.maxFile {
		h.states.Clear(chatID)
		h.sendMessage(ctx, b, chatID,
			fmt.Sprintf("❌ Fayl juda katta. Maks hajm: %d MB.", h.maxFile/1024/1024),
			adminPanelKeyboard())
		return
	}

	data, err := h.courier.DownloadFile(ctx, doc.FileID)
	if err != nil {
		h.logger.Error("attachment download failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.states.Clear(chatID)
		h.sendMessage(ctx, b, chatID,
			"❌ Faylni yuklab olishda xato. Qayta urinib ko'ring.",
			adminPanelKeyboard())
		return
	}

	report, err := h.importer.FromBytes(data)
	h.states.Clear(chatID)
	if err != nil {
		h.sendMessage(ctx, b, chatID,
			"❌ Faylni o'qishda xato. Iltimos faylni tekshirib qayta yuboring.",
			adminPanelKeyboard())
		return
	}
	h.sendMessage(ctx, b, chatID, importSummary(report), adminPanelKeyboard())
}

func (h *Handlers) importFromURL(ctx context.Context, b *bot.Bot, chatID int64, url string) {
	report, err := h.importer.FromURL(ctx, url)
	if errors.Is(err, ingest.ErrBadSheetURL) {
		// Malformed link is step input, not a pipeline failure: re-prompt.
		h.sendMessage(ctx, b, chatID,
			"❌ Google Sheets havolasi noto'g'ri. Iltimos to'liq URL yuboring.",
			backOnlyKeyboard())
		return
	}
	h.states.Clear(chatID)
	if err != nil {
		h.sendMessage(ctx, b, chatID,
			"❌ Havolani yuklashda xato (ruxsat yoki internet).",
			adminPanelKeyboard())
		return
	}
	h.sendMessage(ctx, b, chatID, importSummary(report), adminPanelKeyboard())
}

func importSummary(report ingest.Report) string {
	s := fmt.Sprintf("✅ Jadval yuklandi. Qatorlar: %d.", report.Rows-report.Skipped)
	if report.Skipped > 0 {
		s += fmt.Sprintf(" O'tkazib yuborildi (kun aniqlanmadi): %d.", report.Skipped)
	}
	return s
}

// --- Manual add flow ---

func (h *Handlers) handleManualAddInput(ctx context.Context, b *bot.Bot, chatID int64, text string, flow state.ManualAdd) {
	switch flow.Step {
	case state.AddChooseDay:
		day, ok := matchDay(text)
		if !ok {
			h.sendMessage(ctx, b, chatID,
				"❌ Iltimos to'g'ri kunni tanlang (Dushanba..Yakshanba).",
				backOnlyKeyboard())
			return
		}
		h.startManualAddForDay(ctx, b, chatID, day)

	case state.AddTime:
		if !formatting.ValidEntryTime(text) {
			h.sendMessage(ctx, b, chatID,
				"❌ Soat formati noto'g'ri. Misol: 12:00-13:20",
				backOnlyKeyboard())
			return
		}
		flow.Draft.Time = text
		flow.Step = state.AddSubject
		h.states.Set(chatID, flow)
		h.sendMessage(ctx, b, chatID, "📘 Fan yoki tadbir nomini kiriting:", backOnlyKeyboard())

	case state.AddSubject:
		flow.Draft.Subject = text
		flow.Step = state.AddRoom
		h.states.Set(chatID, flow)
		h.sendMessage(ctx, b, chatID, "🚪 Xona raqamini kiriting:", backOnlyKeyboard())

	case state.AddRoom:
		flow.Draft.Room = text
		flow.Step = state.AddBuilding
		h.states.Set(chatID, flow)
		h.sendMessage(ctx, b, chatID, "🏢 Bino nomini kiriting:", backOnlyKeyboard())

	case state.AddBuilding:
		flow.Draft.Building = text
		flow.Step = state.AddTeacher
		h.states.Set(chatID, flow)
		h.sendMessage(ctx, b, chatID,
			"👩‍🏫 O'qituvchi kiriting (ixtiyoriy, o'tkazish uchun \"-\"):",
			backOnlyKeyboard())

	case state.AddTeacher:
		if text != skipField {
			flow.Draft.Teacher = text
		}
		if err := h.schedule.AddEntry(flow.Day, flow.Draft); err != nil {
			h.logger.Error("manual add failed",
				zap.Int64("chat_id", chatID),
				zap.String("day", flow.Day),
				zap.Error(err))
			h.states.Clear(chatID)
			h.sendMessage(ctx, b, chatID,
				"❌ Xatolik yuz berdi. Qayta boshlang.",
				adminPanelKeyboard())
			return
		}
		h.states.Clear(chatID)
		h.sendMessage(ctx, b, chatID,
			fmt.Sprintf("✅ %s uchun yozuv qo'shildi.", flow.Day),
			adminPanelKeyboard())
	}
}

// --- Remove flow (text path; selections normally arrive as callbacks) ---

func (h *Handlers) handleRemoveInput(ctx context.Context, b *bot.Bot, chatID int64, text string, flow state.Remove) {
	switch flow.Step {
	case state.RemoveChooseDay:
		day, ok := matchDay(text)
		if !ok {
			h.sendMessage(ctx, b, chatID,
				"❌ Iltimos to'g'ri kunni tanlang (Dushanba..Yakshanba).",
				backOnlyKeyboard())
			return
		}
		h.showRemovalList(ctx, b, chatID, day)
	case state.RemoveChooseItem:
		h.sendMessage(ctx, b, chatID, "❌ Iltimos yozuvni tugmalardan tanlang.", backOnlyKeyboard())
	}
}

// --- Broadcast flow ---

func (h *Handlers) handleBroadcastCapture(ctx context.Context, b *bot.Bot, msg *models.Message) {
	chatID := msg.Chat.ID
	payload, ok := broadcastPayload(msg)
	if !ok {
		h.sendMessage(ctx, b, chatID,
			"❌ Bu turdagi xabar qo'llab-quvvatlanmaydi. Matn, rasm, video, hujjat, audio yoki ovoz yuboring.",
			backOnlyKeyboard())
		return
	}

	// State drops to Idle the moment the payload is captured; the send
	// loop runs on its own and reports back when done.
	h.states.Clear(chatID)
	h.sendMessage(ctx, b, chatID, "📨 Xabar yuborilmoqda...", nil)

	go func() {
		sent := h.delivery.Broadcast(context.Background(), payload)
		if err := h.courier.SendText(context.Background(), chatID,
			fmt.Sprintf("✅ Xabar %d foydalanuvchiga yuborildi.", sent)); err != nil {
			h.logger.Error("broadcast summary failed", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}()
}

func broadcastPayload(msg *models.Message) (model.Broadcast, bool) {
	switch {
	case len(msg.Photo) > 0:
		return model.Broadcast{
			Kind:    model.BroadcastPhoto,
			FileID:  msg.Photo[len(msg.Photo)-1].FileID,
			Caption: msg.Caption,
		}, true
	case msg.Video != nil:
		return model.Broadcast{Kind: model.BroadcastVideo, FileID: msg.Video.FileID, Caption: msg.Caption}, true
	case msg.Document != nil:
		return model.Broadcast{Kind: model.BroadcastDocument, FileID: msg.Document.FileID, Caption: msg.Caption}, true
	case msg.Audio != nil:
		return model.Broadcast{Kind: model.BroadcastAudio, FileID: msg.Audio.FileID, Caption: msg.Caption}, true
	case msg.Voice != nil:
		return model.Broadcast{Kind: model.BroadcastVoice, FileID: msg.Voice.FileID, Caption: msg.Caption}, true
	case strings.TrimSpace(msg.Text) != "":
		return model.Broadcast{Kind: model.BroadcastText, Text: msg.Text}, true
	}
	return model.Broadcast{}, false
}

// matchDay accepts a canonical day name typed as text,
// case-insensitively.
func matchDay(text string) (string, bool) {
	for _, day := range model.Days {
		if strings.EqualFold(day, text) {
			return day, true
		}
	}
	return "", false
}
