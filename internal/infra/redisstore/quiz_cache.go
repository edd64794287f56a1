package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

const (
	quizKeyPrefix = "quiz:"
	quizTTL       = 24 * time.Hour
)

var ErrCacheMiss = errors.New("quiz not cached")

// QuizCache shares the fetched daily quiz between bot instances.
type QuizCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuizCache(client *redis.Client) *QuizCache {
	return &QuizCache{client: client, ttl: quizTTL}
}

func (c *QuizCache) Get(ctx context.Context, day entities.Day) (*entities.Quiz, error) {
	data, err := c.client.Get(ctx, quizKeyPrefix+day.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("get cached quiz: %w", err)
	}

	var quiz entities.Quiz
	if err := json.Unmarshal(data, &quiz); err != nil {
		return nil, fmt.Errorf("decode cached quiz: %w", err)
	}

	return &quiz, nil
}

func (c *QuizCache) Set(ctx context.Context, day entities.Day, quiz *entities.Quiz) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}

	return c.client.Set(ctx, quizKeyPrefix+day.String(), data, c.ttl).Err()
}
