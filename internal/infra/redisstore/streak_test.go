package redisstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

func TestStreakRepositoryNotFound(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewStreakRepository(client)

	rec, err := repo.Load(context.Background(), 42)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, entities.ErrStreakNotFound)
}

func TestStreakRepositorySaveLoad(t *testing.T) {
	client, mr := newTestClient(t)
	repo := NewStreakRepository(client)
	ctx := context.Background()

	want := entities.StreakRecord{Date: "2026-10-18", Streak: 3, Best: 7}
	require.NoError(t, repo.Save(ctx, 42, want))

	got, err := repo.Load(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	raw, err := mr.Get("streak:42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-10-18","streak":3,"best":7}`, raw)
	assert.Zero(t, mr.TTL("streak:42"))

	next := entities.StreakRecord{Date: "2026-10-19", Streak: 4, Best: 7}
	require.NoError(t, repo.Save(ctx, 42, next))
	got, err = repo.Load(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, next, *got)
}

func TestStreakRepositoryCorruptValue(t *testing.T) {
	client, mr := newTestClient(t)
	require.NoError(t, mr.Set("streak:42", "not json"))

	_, err := NewStreakRepository(client).Load(context.Background(), 42)
	require.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrStreakNotFound)
}
