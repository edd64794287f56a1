package telegram

import (
	"context"
	"time"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/art-quiz-bot/internal/service"
	"github.com/aliskhannn/art-quiz-bot/internal/storage"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
	Unsubscribe(ctx context.Context, userID int64) error
}

type SessionService interface {
	Current(userID int64, sessionID string) (entities.Session, error)
	Start(ctx context.Context, userID int64) (entities.Session, error)
	Select(userID int64, sessionID string, key entities.OptionKey) (entities.Session, error)
	Press(ctx context.Context, userID int64, sessionID string) (service.PressResult, error)
}

type StreakService interface {
	GetStreak(ctx context.Context, userID int64) (int, error)
	GetRecord(ctx context.Context, userID int64) (*entities.StreakRecord, error)
}

type QuizProvider interface {
	Today() entities.Day
}

type AnnouncementStore interface {
	Swap(chatID int64, messageID int, sentAt time.Time) (storage.AnnouncementMessage, bool)
	Delete(chatID int64)
}
