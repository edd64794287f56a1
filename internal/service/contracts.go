package service

import (
	"context"
	"time"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// QuizFetcher loads the quiz document of a day from the quiz endpoint.
type QuizFetcher interface {
	Fetch(ctx context.Context, day entities.Day) (*entities.Quiz, error)
}

// QuizCache shares fetched quizzes between processes.
type QuizCache interface {
	Get(ctx context.Context, day entities.Day) (*entities.Quiz, error)
	Set(ctx context.Context, day entities.Day, quiz *entities.Quiz) error
}

// StreakRepository persists one streak record per user.
type StreakRepository interface {
	Load(ctx context.Context, userID int64) (*entities.StreakRecord, error)
	Save(ctx context.Context, userID int64, rec entities.StreakRecord) error
}

// Transactor runs fn atomically. Repositories called with the ctx passed
// to fn take part in the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SessionStore keeps active quiz sessions.
type SessionStore interface {
	Store(session entities.Session)
	Get(id string) (entities.Session, bool)
	Delete(id string)
	DeleteExpired(before time.Time) int
}

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	SetActive(ctx context.Context, userID int64, active bool) error
	ListActive(ctx context.Context) ([]*entities.User, error)
}

// DailyQuizProvider returns the quiz of the current day.
type DailyQuizProvider interface {
	Today() entities.Day
	GetToday(ctx context.Context) (*entities.Quiz, entities.Day, error)
}

// StreakRecorder records a completed quiz.
type StreakRecorder interface {
	RecordPlay(ctx context.Context, userID int64, today entities.Day) (entities.StreakRecord, error)
}

// AnnouncementNotifier delivers the daily announcement to a chat.
type AnnouncementNotifier interface {
	Announce(ctx context.Context, chatID int64, quiz *entities.Quiz, day entities.Day) error
}
