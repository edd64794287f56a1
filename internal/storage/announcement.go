package storage

import (
	"sync"
	"time"
)

// AnnouncementMessage is a daily announcement sent to a chat.
type AnnouncementMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// AnnouncementStorage remembers the last announcement per chat so the
// previous day's message can be cleaned up.
type AnnouncementStorage struct {
	mu       sync.Mutex
	messages map[int64]AnnouncementMessage
}

func NewAnnouncementStorage() *AnnouncementStorage {
	return &AnnouncementStorage{
		messages: make(map[int64]AnnouncementMessage),
	}
}

// Swap stores the new announcement of a chat and returns the previous one.
func (s *AnnouncementStorage) Swap(chatID int64, messageID int, sentAt time.Time) (prev AnnouncementMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]
	s.messages[chatID] = AnnouncementMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    sentAt,
	}
	return prev, hadPrev
}

func (s *AnnouncementStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, chatID)
}
