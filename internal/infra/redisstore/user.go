package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

const (
	userKeyPrefix  = "user:"
	activeUsersKey = "users:active"
)

// UserRepository keeps users as JSON documents and the IDs of subscribed
// users in a set.
type UserRepository struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) *UserRepository {
	return &UserRepository{client: client}
}

func userKey(userID int64) string {
	return userKeyPrefix + strconv.FormatInt(userID, 10)
}

type userDoc struct {
	ID        int64 `json:"id"`
	ChatID    int64 `json:"chat_id"`
	IsActive  bool  `json:"is_active"`
	CreatedAt int64 `json:"created_at"`
}

// Save inserts or updates a user and reports whether it was created.
func (r *UserRepository) Save(ctx context.Context, user *entities.User) (bool, error) {
	doc := userDoc{
		ID:        user.ID,
		ChatID:    user.ChatID,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Unix(),
	}

	prev, err := r.load(ctx, user.ID)
	created := errors.Is(err, redis.Nil)
	if err != nil && !created {
		return false, err
	}
	if prev != nil {
		doc.CreatedAt = prev.CreatedAt
	}

	if err := r.store(ctx, doc); err != nil {
		return false, err
	}
	return created, nil
}

// SetActive toggles the announcement subscription of a user.
func (r *UserRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	doc, err := r.load(ctx, userID)
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	doc.IsActive = active
	return r.store(ctx, *doc)
}

// ListActive returns active users ordered by ID.
func (r *UserRepository) ListActive(ctx context.Context) ([]*entities.User, error) {
	ids, err := r.client.SMembers(ctx, activeUsersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}

	users := make([]*entities.User, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		doc, err := r.load(ctx, id)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		users = append(users, &entities.User{
			ID:        doc.ID,
			ChatID:    doc.ChatID,
			IsActive:  doc.IsActive,
			CreatedAt: time.Unix(doc.CreatedAt, 0).UTC(),
		})
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepository) load(ctx context.Context, userID int64) (*userDoc, error) {
	data, err := r.client.Get(ctx, userKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, err
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	var doc userDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &doc, nil
}

func (r *UserRepository) store(ctx context.Context, doc userDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	id := strconv.FormatInt(doc.ID, 10)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, userKey(doc.ID), data, 0)
		if doc.IsActive {
			pipe.SAdd(ctx, activeUsersKey, id)
		} else {
			pipe.SRem(ctx, activeUsersKey, id)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
