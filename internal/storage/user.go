package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// UserStorage keeps bot users in memory.
type UserStorage struct {
	mu    sync.RWMutex
	users map[int64]entities.User
}

func NewUserStorage() *UserStorage {
	return &UserStorage{users: make(map[int64]entities.User)}
}

// Save inserts or updates a user and reports whether it was created.
func (s *UserStorage) Save(_ context.Context, user *entities.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, exists := s.users[user.ID]
	u := *user
	if exists {
		u.CreatedAt = prev.CreatedAt
	}
	s.users[user.ID] = u
	return !exists, nil
}

// SetActive toggles the announcement subscription of a user.
func (s *UserStorage) SetActive(_ context.Context, userID int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	u.IsActive = active
	s.users[userID] = u
	return nil
}

// ListActive returns active users ordered by ID.
func (s *UserStorage) ListActive(_ context.Context) ([]*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.User, 0, len(s.users))
	for _, u := range s.users {
		if u.IsActive {
			u := u
			out = append(out, &u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
