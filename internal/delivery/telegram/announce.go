package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// Announce sends the daily announcement to a chat and removes the one
// sent the day before.
func (h *Handler) Announce(_ context.Context, chatID int64, quiz *entities.Quiz, day entities.Day) error {
	msg := newMessage(chatID, renderAnnouncement(quiz, day))
	msg.ReplyMarkup = buildPlayKeyboard()

	sent, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send announcement: %w", err)
	}

	prev, ok := h.announcements.Swap(chatID, sent.MessageID, time.Now().UTC())
	if !ok {
		return nil
	}

	if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(chatID, prev.MessageID)); err != nil {
		h.logger.Debug("failed to delete previous announcement",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", prev.MessageID),
			zap.Error(err),
		)
	}

	return nil
}
