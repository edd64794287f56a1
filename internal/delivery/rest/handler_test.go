package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

type quizStub struct {
	quiz *entities.Quiz
	err  error
}

func (s quizStub) GetToday(context.Context) (*entities.Quiz, entities.Day, error) {
	return s.quiz, "2026-10-18", s.err
}

type streakStub map[int64]entities.StreakRecord

func (s streakStub) GetRecord(_ context.Context, userID int64) (*entities.StreakRecord, error) {
	if userID == 500 {
		return nil, errors.New("db down")
	}
	rec, ok := s[userID]
	if !ok {
		return nil, entities.ErrStreakNotFound
	}
	return &rec, nil
}

func newTestRouter(q quizStub) http.Handler {
	streaks := streakStub{7: {Date: "2026-10-18", Streak: 3, Best: 4}}
	return NewRouter(NewHandler(q, streaks, zap.NewNop()), zap.NewNop())
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(t, newTestRouter(quizStub{}), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestTodayQuiz(t *testing.T) {
	quiz := &entities.Quiz{Title: "Water Lilies"}
	rec := serve(t, newTestRouter(quizStub{quiz: quiz}), "/quiz/today")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Date string        `json:"date"`
		Quiz entities.Quiz `json:"quiz"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-18", body.Date)
	assert.Equal(t, "Water Lilies", body.Quiz.Title)

	rec = serve(t, newTestRouter(quizStub{err: errors.New("timeout")}), "/quiz/today")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetStreak(t *testing.T) {
	router := newTestRouter(quizStub{})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/streaks/7", http.StatusOK, `{"date":"2026-10-18","streak":3,"best":4}`},
		{"/streaks/8", http.StatusNotFound, `{"error":"streak not found"}`},
		{"/streaks/abc", http.StatusBadRequest, `{"error":"invalid user id"}`},
		{"/streaks/500", http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(t, router, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
