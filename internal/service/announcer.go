package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentAnnouncements = 10

var ErrNotifierNotSet = errors.New("notifier not initialized")

// Announcer sends the quiz of the day to every active user.
type Announcer struct {
	quizzes  DailyQuizProvider
	users    UserRepository
	notifier AnnouncementNotifier
	logger   *zap.Logger
}

func NewAnnouncer(quizzes DailyQuizProvider, users UserRepository, logger *zap.Logger) *Announcer {
	return &Announcer{
		quizzes: quizzes,
		users:   users,
		logger:  logger,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (a *Announcer) SetNotifier(notifier AnnouncementNotifier) {
	a.notifier = notifier
}

// AnnounceToday notifies all active users and returns how many were reached.
// Failed deliveries are logged and do not stop the others.
func (a *Announcer) AnnounceToday(ctx context.Context) (int, error) {
	if a.notifier == nil {
		return 0, ErrNotifierNotSet
	}

	quiz, day, err := a.quizzes.GetToday(ctx)
	if err != nil {
		return 0, fmt.Errorf("get today quiz: %w", err)
	}

	users, err := a.users.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active users: %w", err)
	}

	var sent atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnnouncements)

	for _, u := range users {
		g.Go(func() error {
			if err := a.notifier.Announce(gctx, u.ChatID, quiz, day); err != nil {
				a.logger.Error("failed to announce quiz",
					zap.Int64("user_id", u.ID),
					zap.Error(err))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}

	_ = g.Wait()

	a.logger.Info("daily quiz announced",
		zap.String("date", day.String()),
		zap.Int("users", len(users)),
		zap.Int64("sent", sent.Load()),
	)

	return int(sent.Load()), nil
}
