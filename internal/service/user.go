package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// UserService manages announcement subscribers.
type UserService struct {
	repo   UserRepository
	logger *zap.Logger
}

func NewUserService(repo UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// EnsureUser registers the user or re-activates an existing subscription.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	created, err := s.repo.Save(ctx, entities.NewUser(userID, chatID, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	if created {
		s.logger.Info("user registered",
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
		)
	}
	return nil
}

// Unsubscribe stops daily announcements for the user.
func (s *UserService) Unsubscribe(ctx context.Context, userID int64) error {
	if err := s.repo.SetActive(ctx, userID, false); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}

	s.logger.Info("user unsubscribed", zap.Int64("user_id", userID))
	return nil
}
