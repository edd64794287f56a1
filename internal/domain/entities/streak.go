package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrStreakNotFound = errors.New("streak not found")

// GapPolicy decides what a play does to a streak whose last play is
// older than yesterday.
type GapPolicy string

const (
	GapReset    GapPolicy = "reset"    // start over at 1
	GapPreserve GapPolicy = "preserve" // keep the record untouched
)

func ParseGapPolicy(s string) (GapPolicy, error) {
	switch p := GapPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case GapReset, GapPreserve:
		return p, nil
	case "":
		return GapReset, nil
	default:
		return "", fmt.Errorf("unknown streak gap policy %q", s)
	}
}

// StreakRecord is the persisted day-over-day streak of a user.
type StreakRecord struct {
	Date   Day `json:"date"`           // last day a quiz was completed
	Streak int `json:"streak"`         // consecutive days, always >= 1
	Best   int `json:"best,omitempty"` // longest streak seen
}

// NewStreakRecord returns the record of a first play on today.
func NewStreakRecord(today Day) StreakRecord {
	return StreakRecord{Date: today, Streak: 1, Best: 1}
}

// Advance returns the record after a completed quiz on today and whether
// it differs from r.
func (r StreakRecord) Advance(today Day, policy GapPolicy) (StreakRecord, bool) {
	switch r.Date {
	case today:
		return r, false
	case today.AddDays(-1):
		next := StreakRecord{Date: today, Streak: r.Current() + 1, Best: r.Best}
		next.Best = max(next.Best, next.Streak)
		return next, true
	}

	if policy == GapPreserve {
		return r, false
	}

	return StreakRecord{Date: today, Streak: 1, Best: max(r.Best, r.Current())}, true
}

// Current returns the streak value, never less than 1.
func (r StreakRecord) Current() int {
	if r.Streak < 1 {
		return 1
	}
	return r.Streak
}

// BestOrCurrent returns the best streak, falling back to the current one
// for records written before best was tracked.
func (r StreakRecord) BestOrCurrent() int {
	return max(r.Best, r.Current())
}
