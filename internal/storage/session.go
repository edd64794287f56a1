package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// SessionStorage provides in-memory storage for quiz sessions.
// A user has at most one session: storing a new one replaces the old.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
	byUser   map[int64]string
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[string]entities.Session),
		byUser:   make(map[int64]string),
	}
}

// Store saves a session under its ID.
func (s *SessionStorage) Store(session entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byUser[session.UserID]; ok && prev != session.ID {
		delete(s.sessions, prev)
	}
	s.sessions[session.ID] = session
	s.byUser[session.UserID] = session.ID
}

// Get retrieves a session by ID.
func (s *SessionStorage) Get(id string) (entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Delete removes a session.
func (s *SessionStorage) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return
	}
	delete(s.sessions, id)
	if s.byUser[session.UserID] == id {
		delete(s.byUser, session.UserID)
	}
}

// DeleteExpired removes sessions not updated since before and returns how many were removed.
func (s *SessionStorage) DeleteExpired(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(before) {
			delete(s.sessions, id)
			if s.byUser[session.UserID] == id {
				delete(s.byUser, session.UserID)
			}
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
