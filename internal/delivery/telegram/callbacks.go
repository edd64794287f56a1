package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/art-quiz-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	cd := decodeCallback(cb.Data)

	switch cd.Action {
	case actionPlay:
		h.answerCallback(cb.ID, "")
		_ = h.withErrorHandling(h.handleQuiz(cb.From.ID))(ctx, cb.Message.Chat.ID)

	case actionSelect:
		h.handleSelectCallback(cb, cd)

	case actionPress:
		h.handlePressCallback(ctx, cb, cd)

	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
	}
}

// activeSession returns the session a quiz callback refers to, or the toast
// explaining why the callback is stale.
func (h *Handler) activeSession(cb *tgbotapi.CallbackQuery, cd callbackData) (entities.Session, quizCallback, string) {
	qc, err := parseQuizCallback(cd)
	if err != nil {
		h.logger.Debug("invalid quiz callback", zap.String("data", cb.Data))
		return entities.Session{}, qc, toastStale
	}

	session, err := h.sessionService.Current(cb.From.ID, qc.SessionID)
	if err != nil {
		return entities.Session{}, qc, toastSessionExpired
	}

	if session.Index() != qc.Index {
		return entities.Session{}, qc, toastStale
	}

	return session, qc, ""
}

func (h *Handler) handleSelectCallback(cb *tgbotapi.CallbackQuery, cd callbackData) {
	session, qc, toast := h.activeSession(cb, cd)
	if toast != "" {
		h.answerCallback(cb.ID, toast)
		return
	}

	if selected, ok := session.Selected(); ok && selected == qc.Key && !session.Revealed() {
		h.answerCallback(cb.ID, "")
		return
	}

	next, err := h.sessionService.Select(cb.From.ID, qc.SessionID, qc.Key)
	if err != nil {
		h.answerCallback(cb.ID, toastFor(err))
		return
	}

	h.answerCallback(cb.ID, "")
	h.editQuestion(cb, next)
}

func (h *Handler) handlePressCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) {
	_, qc, toast := h.activeSession(cb, cd)
	if toast != "" {
		h.answerCallback(cb.ID, toast)
		return
	}

	res, err := h.sessionService.Press(ctx, cb.From.ID, qc.SessionID)
	if err != nil {
		if toast := toastFor(err); toast != toastRecordFailed {
			h.answerCallback(cb.ID, toast)
			return
		}
		h.logger.Error("failed to finish quiz session",
			zap.Int64("user_id", cb.From.ID),
			zap.String("session_id", qc.SessionID),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, toastRecordFailed)
		return
	}

	h.answerCallback(cb.ID, "")

	if res.Event == entities.EventFinished {
		_ = h.send(newEdit(cb.Message.Chat.ID, cb.Message.MessageID, renderResults(res.Session, res.Streak), nil))
		return
	}

	h.editQuestion(cb, res.Session)
}

func (h *Handler) editQuestion(cb *tgbotapi.CallbackQuery, s entities.Session) {
	kb := buildQuestionKeyboard(s)
	_ = h.send(newEdit(cb.Message.Chat.ID, cb.Message.MessageID, renderQuestion(s), &kb))
}

// toastFor maps a session error to the toast shown to the user.
func toastFor(err error) string {
	switch {
	case errors.Is(err, entities.ErrNoSelection):
		return toastChooseFirst
	case errors.Is(err, entities.ErrAnswerLocked):
		return toastAnswerLocked
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, entities.ErrSessionFinished):
		return toastSessionExpired
	case errors.Is(err, entities.ErrUnknownOption):
		return toastStale
	default:
		return toastRecordFailed
	}
}
