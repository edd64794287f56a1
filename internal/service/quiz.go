package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// QuizService loads the quiz of the day and keeps it in memory until the
// calendar day changes.
type QuizService struct {
	fetcher QuizFetcher
	cache   QuizCache // optional
	loc     *time.Location
	logger  *zap.Logger
	now     func() time.Time

	mu   sync.Mutex
	day  entities.Day
	quiz *entities.Quiz
}

func NewQuizService(fetcher QuizFetcher, cache QuizCache, loc *time.Location, logger *zap.Logger) *QuizService {
	if loc == nil {
		loc = time.UTC
	}
	return &QuizService{
		fetcher: fetcher,
		cache:   cache,
		loc:     loc,
		logger:  logger,
		now:     time.Now,
	}
}

// Today returns the current calendar day in the configured location.
func (s *QuizService) Today() entities.Day {
	return entities.Today(s.now(), s.loc)
}

// GetToday returns today's quiz and the day it belongs to.
func (s *QuizService) GetToday(ctx context.Context) (*entities.Quiz, entities.Day, error) {
	day := s.Today()
	quiz, err := s.Get(ctx, day)
	if err != nil {
		return nil, day, err
	}
	return quiz, day, nil
}

// Get returns the quiz of day. Callers for the same day share one fetch.
func (s *QuizService) Get(ctx context.Context, day entities.Day) (*entities.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiz != nil && s.day == day {
		return s.quiz, nil
	}

	quiz, err := s.load(ctx, day)
	if err != nil {
		return nil, err
	}

	s.day, s.quiz = day, quiz
	return quiz, nil
}

// Prefetch loads today's quiz ahead of the first request.
func (s *QuizService) Prefetch(ctx context.Context) error {
	quiz, day, err := s.GetToday(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("quiz prefetched",
		zap.String("date", day.String()),
		zap.String("title", quiz.Title),
		zap.Int("questions", quiz.Len()),
	)
	return nil
}

func (s *QuizService) load(ctx context.Context, day entities.Day) (*entities.Quiz, error) {
	if s.cache != nil {
		quiz, err := s.cache.Get(ctx, day)
		if err == nil && quiz.Validate() == nil {
			s.logger.Debug("quiz loaded from cache", zap.String("date", day.String()))
			return quiz, nil
		}
		if err != nil {
			s.logger.Debug("quiz cache miss", zap.String("date", day.String()), zap.Error(err))
		}
	}

	quiz, err := s.fetcher.Fetch(ctx, day)
	if err != nil {
		return nil, err
	}

	s.logger.Info("quiz fetched",
		zap.String("date", day.String()),
		zap.String("title", quiz.Title),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, day, quiz); err != nil {
			s.logger.Warn("failed to cache quiz", zap.String("date", day.String()), zap.Error(err))
		}
	}

	return quiz, nil
}
