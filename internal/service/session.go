package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// PressResult is the outcome of a press of the primary button.
type PressResult struct {
	Session entities.Session
	Event   entities.Event
	Streak  entities.StreakRecord // set on EventFinished only
}

// SessionService drives quiz sessions and records completed plays.
type SessionService struct {
	quizzes DailyQuizProvider
	streaks StreakRecorder
	store   SessionStore
	ttl     time.Duration
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewSessionService(
	quizzes DailyQuizProvider,
	streaks StreakRecorder,
	store SessionStore,
	ttl time.Duration,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		quizzes: quizzes,
		streaks: streaks,
		store:   store,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Start loads today's quiz and opens a new session for the user,
// replacing any session the user already had.
func (s *SessionService) Start(ctx context.Context, userID int64) (entities.Session, error) {
	quiz, day, err := s.quizzes.GetToday(ctx)
	if err != nil {
		return entities.Session{}, fmt.Errorf("get today quiz: %w", err)
	}

	session := entities.NewSession(s.newID(), userID, day, quiz, s.now())
	s.store.Store(session)

	s.logger.Info("quiz session started",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID),
		zap.String("date", day.String()),
	)

	return session, nil
}

// Current returns a session owned by the user.
func (s *SessionService) Current(userID int64, sessionID string) (entities.Session, error) {
	session, ok := s.store.Get(sessionID)
	if !ok || session.UserID != userID {
		return entities.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Select chooses an option of the current question.
func (s *SessionService) Select(userID int64, sessionID string, key entities.OptionKey) (entities.Session, error) {
	session, err := s.Current(userID, sessionID)
	if err != nil {
		return entities.Session{}, err
	}

	next, err := session.Select(key)
	if err != nil {
		return session, err
	}

	next.UpdatedAt = s.now()
	s.store.Store(next)
	return next, nil
}

// Press handles the primary button. When the session finishes the play is
// recorded on the current day and the session is closed. If recording fails the session
// stays on the last revealed answer so the press can be retried.
func (s *SessionService) Press(ctx context.Context, userID int64, sessionID string) (PressResult, error) {
	session, err := s.Current(userID, sessionID)
	if err != nil {
		return PressResult{}, err
	}

	next, event, err := session.Press()
	if err != nil {
		return PressResult{Session: session}, err
	}

	result := PressResult{Session: next, Event: event}

	if event != entities.EventFinished {
		next.UpdatedAt = s.now()
		s.store.Store(next)
		result.Session = next
		return result, nil
	}

	rec, err := s.streaks.RecordPlay(ctx, userID, s.quizzes.Today())
	if err != nil {
		return PressResult{Session: session}, fmt.Errorf("record play: %w", err)
	}

	s.store.Delete(sessionID)
	result.Streak = rec

	s.logger.Info("quiz session finished",
		zap.Int64("user_id", userID),
		zap.String("session_id", sessionID),
		zap.Int("correct", next.Correct()),
		zap.Int("total", next.Total()),
		zap.Int("streak", rec.Streak),
	)

	return result, nil
}

// Sweep removes sessions idle for longer than the configured TTL.
func (s *SessionService) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	removed := s.store.DeleteExpired(s.now().Add(-s.ttl))
	if removed > 0 {
		s.logger.Info("expired quiz sessions removed", zap.Int("count", removed))
	}
	return removed
}
