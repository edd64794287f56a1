package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// handleStart registers the user for the daily announcement.
func (h *Handler) handleStart(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.userService.EnsureUser(ctx, userID, chatID); err != nil {
			return fmt.Errorf("ensure user: %w", err)
		}
		return h.send(newPlainMessage(chatID, msgWelcome))
	}
}

// handleQuiz opens a session on today's quiz: the artwork photo first,
// then the question message that is edited in place from then on.
func (h *Handler) handleQuiz(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, err := h.sessionService.Start(ctx, userID)
		if err != nil {
			h.logger.Error("failed to start quiz session",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			h.sendError(chatID, msgQuizUnavailable)
			return nil
		}

		quiz := session.Quiz()
		if quiz.Image != "" {
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(quiz.Image))
			photo.Caption = renderCaption(quiz)
			photo.ParseMode = tgbotapi.ModeMarkdownV2
			_ = h.send(photo)
		} else {
			_ = h.send(newMessage(chatID, renderCaption(quiz)))
		}

		msg := newMessage(chatID, renderQuestion(session))
		msg.ReplyMarkup = buildQuestionKeyboard(session)
		return h.send(msg)
	}
}

// handleStreak shows the current and best streak.
func (h *Handler) handleStreak(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		rec, err := h.loadStreak(ctx, userID)
		if err != nil {
			return err
		}
		return h.send(newMessage(chatID, renderStreak(rec, h.quizzes.Today())))
	}
}

// loadStreak returns the persisted record, or a fresh streak of the default
// length when the user has never finished a quiz.
func (h *Handler) loadStreak(ctx context.Context, userID int64) (entities.StreakRecord, error) {
	rec, err := h.streakService.GetRecord(ctx, userID)
	if err == nil {
		return *rec, nil
	}
	if !errors.Is(err, entities.ErrStreakNotFound) {
		return entities.StreakRecord{}, fmt.Errorf("get streak record: %w", err)
	}

	streak, err := h.streakService.GetStreak(ctx, userID)
	if err != nil {
		return entities.StreakRecord{}, fmt.Errorf("get streak: %w", err)
	}
	return entities.StreakRecord{Streak: streak}, nil
}

// handleStop unsubscribes the user from the daily announcement.
func (h *Handler) handleStop(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.userService.Unsubscribe(ctx, userID); err != nil {
			return err
		}
		h.announcements.Delete(chatID)
		return h.send(newPlainMessage(chatID, msgUnsubscribed))
	}
}
