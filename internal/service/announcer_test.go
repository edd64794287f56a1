package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/art-quiz-bot/internal/storage"
)

type notifierStub struct {
	mu     sync.Mutex
	chats  []int64
	failOn int64
}

func (n *notifierStub) Announce(_ context.Context, chatID int64, _ *entities.Quiz, _ entities.Day) error {
	if chatID == n.failOn {
		return errors.New("blocked by user")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chats = append(n.chats, chatID)
	return nil
}

func TestAnnounceToday(t *testing.T) {
	ctx := context.Background()
	users := storage.NewUserStorage()
	svc := NewUserService(users, zap.NewNop())
	for id := int64(1); id <= 4; id++ {
		require.NoError(t, svc.EnsureUser(ctx, id, id*100))
	}
	require.NoError(t, svc.Unsubscribe(ctx, 2))

	a := NewAnnouncer(staticQuizProvider{quiz: quizWithAnswers(entities.OptionA), day: testToday}, users, zap.NewNop())
	notifier := &notifierStub{failOn: 300}
	a.SetNotifier(notifier)

	sent, err := a.AnnounceToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	sort.Slice(notifier.chats, func(i, j int) bool { return notifier.chats[i] < notifier.chats[j] })
	assert.Equal(t, []int64{100, 400}, notifier.chats)
}

func TestAnnounceWithoutNotifier(t *testing.T) {
	a := NewAnnouncer(staticQuizProvider{}, storage.NewUserStorage(), zap.NewNop())

	_, err := a.AnnounceToday(context.Background())
	assert.ErrorIs(t, err, ErrNotifierNotSet)
}

func TestEnsureUserReactivates(t *testing.T) {
	ctx := context.Background()
	users := storage.NewUserStorage()
	svc := NewUserService(users, zap.NewNop())

	require.NoError(t, svc.EnsureUser(ctx, 1, 10))
	require.NoError(t, svc.Unsubscribe(ctx, 1))

	active, err := users.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, svc.EnsureUser(ctx, 1, 10))
	active, err = users.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, int64(10), active[0].ChatID)
}
