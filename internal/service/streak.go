package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// StreakService tracks day-over-day streaks of completed quizzes.
type StreakService struct {
	repo   StreakRepository
	tx     Transactor // optional
	policy entities.GapPolicy
	logger *zap.Logger
}

func NewStreakService(repo StreakRepository, tx Transactor, policy entities.GapPolicy, logger *zap.Logger) *StreakService {
	return &StreakService{
		repo:   repo,
		tx:     tx,
		policy: policy,
		logger: logger,
	}
}

// RecordPlay records a completed quiz on today and returns the resulting record.
// Repeated calls on the same day leave the record unchanged.
func (s *StreakService) RecordPlay(ctx context.Context, userID int64, today entities.Day) (entities.StreakRecord, error) {
	var (
		result  entities.StreakRecord
		changed bool
	)

	err := s.withinTx(ctx, func(ctx context.Context) error {
		prev, err := s.repo.Load(ctx, userID)
		if err != nil && !errors.Is(err, entities.ErrStreakNotFound) {
			return err
		}

		if prev == nil {
			result, changed = entities.NewStreakRecord(today), true
		} else {
			result, changed = prev.Advance(today, s.policy)
		}

		if !changed {
			return nil
		}
		return s.repo.Save(ctx, userID, result)
	})
	if err != nil {
		return entities.StreakRecord{}, err
	}

	s.logger.Info("play recorded",
		zap.Int64("user_id", userID),
		zap.String("date", today.String()),
		zap.Int("streak", result.Streak),
		zap.Bool("changed", changed),
	)

	return result, nil
}

// GetStreak returns the persisted streak of a user, 1 when there is none.
func (s *StreakService) GetStreak(ctx context.Context, userID int64) (int, error) {
	rec, err := s.repo.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrStreakNotFound) {
			return 1, nil
		}
		return 0, err
	}
	return rec.Current(), nil
}

// GetRecord returns the persisted record or entities.ErrStreakNotFound.
func (s *StreakService) GetRecord(ctx context.Context, userID int64) (*entities.StreakRecord, error) {
	return s.repo.Load(ctx, userID)
}

func (s *StreakService) withinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.WithinTx(ctx, fn)
}
