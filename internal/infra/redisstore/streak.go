package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

const streakKeyPrefix = "streak:"

// StreakRepository stores each streak record as JSON under a single key per user.
type StreakRepository struct {
	client *redis.Client
}

func NewStreakRepository(client *redis.Client) *StreakRepository {
	return &StreakRepository{client: client}
}

func streakKey(userID int64) string {
	return streakKeyPrefix + strconv.FormatInt(userID, 10)
}

// Load returns the record of a user or entities.ErrStreakNotFound.
func (r *StreakRepository) Load(ctx context.Context, userID int64) (*entities.StreakRecord, error) {
	data, err := r.client.Get(ctx, streakKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, entities.ErrStreakNotFound
		}
		return nil, fmt.Errorf("load streak: %w", err)
	}

	var rec entities.StreakRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode streak: %w", err)
	}

	return &rec, nil
}

// Save replaces the record of a user. Streak keys never expire.
func (r *StreakRepository) Save(ctx context.Context, userID int64, rec entities.StreakRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode streak: %w", err)
	}

	if err := r.client.Set(ctx, streakKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}

	return nil
}
