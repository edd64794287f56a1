package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

type streakServiceStub struct {
	record    *entities.StreakRecord
	recordErr error
	streak    int
	calls     int
}

func (s *streakServiceStub) GetStreak(context.Context, int64) (int, error) {
	s.calls++
	return s.streak, nil
}

func (s *streakServiceStub) GetRecord(context.Context, int64) (*entities.StreakRecord, error) {
	return s.record, s.recordErr
}

func TestLoadStreakWithoutRecord(t *testing.T) {
	stub := &streakServiceStub{recordErr: entities.ErrStreakNotFound, streak: 1}
	h := &Handler{streakService: stub}

	rec, err := h.loadStreak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, 1, rec.Current())

	text := renderStreak(rec, "2026-10-18")
	assert.Contains(t, text, "*1*")
	assert.Contains(t, text, "/quiz")
}

func TestLoadStreakWithRecord(t *testing.T) {
	stub := &streakServiceStub{record: &entities.StreakRecord{Date: "2026-10-18", Streak: 4, Best: 6}}
	h := &Handler{streakService: stub}

	rec, err := h.loadStreak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, stub.calls)
	assert.Equal(t, 4, rec.Streak)
}

func TestLoadStreakError(t *testing.T) {
	boom := errors.New("db down")
	h := &Handler{streakService: &streakServiceStub{recordErr: boom}}

	_, err := h.loadStreak(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
