// Package telegram adapts the go-telegram/bot transport to the narrow
// outbound surface the services need.
package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/bekzodov/jadval-bot/internal/model"
)

// ErrFileTooLarge marks an attachment over the configured size cap.
var ErrFileTooLarge = errors.New("file exceeds size limit")

// Courier sends outbound content and downloads inbound attachments.
type Courier struct {
	bot     *bot.Bot
	client  *http.Client
	maxFile int64
}

func NewCourier(b *bot.Bot, maxFileSize int64) *Courier {
	return &Courier{
		bot:     b,
		client:  http.DefaultClient,
		maxFile: maxFileSize,
	}
}

// SendText sends a plain text message.
func (c *Courier) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	return err
}

// SendPhoto uploads a photo from memory.
func (c *Courier) SendPhoto(ctx context.Context, chatID int64, name string, data []byte, caption string) error {
	_, err := c.bot.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: name, Data: bytes.NewReader(data)},
		Caption: caption,
	})
	return err
}

// SendBroadcast re-sends a captured admin payload by Telegram file id.
func (c *Courier) SendBroadcast(ctx context.Context, chatID int64, b model.Broadcast) error {
	var err error
	switch b.Kind {
	case model.BroadcastText:
		_, err = c.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Muhim xabar!:\n\n" + b.Text,
		})
	case model.BroadcastPhoto:
		_, err = c.bot.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:  chatID,
			Photo:   &models.InputFileString{Data: b.FileID},
			Caption: b.Caption,
		})
	case model.BroadcastVideo:
		_, err = c.bot.SendVideo(ctx, &bot.SendVideoParams{
			ChatID:  chatID,
			Video:   &models.InputFileString{Data: b.FileID},
			Caption: b.Caption,
		})
	case model.BroadcastDocument:
		_, err = c.bot.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:   chatID,
			Document: &models.InputFileString{Data: b.FileID},
			Caption:  b.Caption,
		})
	case model.BroadcastAudio:
		_, err = c.bot.SendAudio(ctx, &bot.SendAudioParams{
			ChatID:  chatID,
			Audio:   &models.InputFileString{Data: b.FileID},
			Caption: b.Caption,
		})
	case model.BroadcastVoice:
		_, err = c.bot.SendVoice(ctx, &bot.SendVoiceParams{
			ChatID:  chatID,
			Voice:   &models.InputFileString{Data: b.FileID},
			Caption: b.Caption,
		})
	default:
		err = fmt.Errorf("unsupported broadcast kind %q", b.Kind)
	}
	return err
}

// DownloadFile fetches an attachment's bytes through the bot API,
// enforcing the size cap.
func (c *Courier) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := c.bot.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.bot.FileDownloadLink(file), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxFile+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > c.maxFile {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// Permanent reports whether a send error means the recipient is
// permanently unreachable (blocked the bot, deleted the chat).
func (c *Courier) Permanent(err error) bool {
	return errors.Is(err, bot.ErrorForbidden) || errors.Is(err, bot.ErrorBadRequest)
}
