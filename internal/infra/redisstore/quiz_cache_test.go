package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

func TestQuizCacheMissAndHit(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewQuizCache(client)
	ctx := context.Background()

	_, err := cache.Get(ctx, "2026-10-18")
	assert.ErrorIs(t, err, ErrCacheMiss)

	quiz := &entities.Quiz{
		Image: "https://example.org/gothic.jpg",
		Title: "American Gothic",
		Questions: []entities.Question{{
			Difficulty:    "easy",
			Text:          "Who painted it?",
			Options:       map[entities.OptionKey]string{entities.OptionA: "Grant Wood", entities.OptionB: "Hopper"},
			CorrectAnswer: entities.OptionA,
		}},
		Provenance: []string{"Art Institute of Chicago, 1930"},
	}
	require.NoError(t, cache.Set(ctx, "2026-10-18", quiz))

	got, err := cache.Get(ctx, "2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, quiz, got)
	assert.Equal(t, 24*time.Hour, mr.TTL("quiz:2026-10-18"))

	_, err = cache.Get(ctx, "2026-10-19")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestQuizCacheExpires(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewQuizCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "2026-10-18", &entities.Quiz{Title: "Nighthawks"}))
	mr.FastForward(25 * time.Hour)

	_, err := cache.Get(ctx, "2026-10-18")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
