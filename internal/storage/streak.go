package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// StreakStorage keeps streak records in memory. It is used when no
// persistent storage driver is configured and in tests.
type StreakStorage struct {
	mu      sync.RWMutex
	records map[int64]entities.StreakRecord
}

func NewStreakStorage() *StreakStorage {
	return &StreakStorage{records: make(map[int64]entities.StreakRecord)}
}

// Load returns the record of a user or entities.ErrStreakNotFound.
func (s *StreakStorage) Load(_ context.Context, userID int64) (*entities.StreakRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[userID]
	if !ok {
		return nil, entities.ErrStreakNotFound
	}
	return &rec, nil
}

// Save replaces the record of a user.
func (s *StreakStorage) Save(_ context.Context, userID int64, rec entities.StreakRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userID] = rec
	return nil
}
