package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

type QuizService interface {
	GetToday(ctx context.Context) (*entities.Quiz, entities.Day, error)
}

type StreakService interface {
	GetRecord(ctx context.Context, userID int64) (*entities.StreakRecord, error)
}

// Handler serves the operational HTTP endpoints.
type Handler struct {
	quizzes QuizService
	streaks StreakService
	logger  *zap.Logger
}

func NewHandler(quizzes QuizService, streaks StreakService, logger *zap.Logger) *Handler {
	return &Handler{quizzes: quizzes, streaks: streaks, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type todayQuizResponse struct {
	Date entities.Day   `json:"date"`
	Quiz *entities.Quiz `json:"quiz"`
}

func (h *Handler) TodayQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, day, err := h.quizzes.GetToday(r.Context())
	if err != nil {
		h.logger.Error("failed to load today quiz", zap.Error(err))
		Error(w, http.StatusBadGateway, "quiz unavailable")
		return
	}

	JSON(w, http.StatusOK, todayQuizResponse{Date: day, Quiz: quiz})
}

func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	rec, err := h.streaks.GetRecord(r.Context(), userID)
	if err != nil {
		if errors.Is(err, entities.ErrStreakNotFound) {
			Error(w, http.StatusNotFound, "streak not found")
			return
		}
		h.logger.Error("failed to load streak", zap.Int64("user_id", userID), zap.Error(err))
		Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	JSON(w, http.StatusOK, rec)
}
