package entities

import "time"

// User is a chat subscribed to the bot.
type User struct {
	ID        int64 // Telegram user ID
	ChatID    int64 // chat the daily announcement goes to
	IsActive  bool  // false after /stop
	CreatedAt time.Time
}

func NewUser(id, chatID int64, now time.Time) *User {
	return &User{
		ID:        id,
		ChatID:    chatID,
		IsActive:  true,
		CreatedAt: now,
	}
}
