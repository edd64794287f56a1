package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot            *tgbotapi.BotAPI
	logger         *zap.Logger
	userService    UserService
	sessionService SessionService
	streakService  StreakService
	quizzes        QuizProvider
	announcements  AnnouncementStore
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	userService UserService,
	sessionService SessionService,
	streakService StreakService,
	quizzes QuizProvider,
	announcements AnnouncementStore,
) *Handler {
	return &Handler{
		bot:            bot,
		logger:         logger,
		userService:    userService,
		sessionService: sessionService,
		streakService:  streakService,
		quizzes:        quizzes,
		announcements:  announcements,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

// SetCommands publishes the command list shown in the Telegram menu.
func (h *Handler) SetCommands() error {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "quiz", Description: "Play today's quiz"},
		tgbotapi.BotCommand{Command: "streak", Description: "Show your streak"},
		tgbotapi.BotCommand{Command: "help", Description: "How it works"},
		tgbotapi.BotCommand{Command: "stop", Description: "Stop daily announcements"},
	)
	_, err := h.bot.Request(cfg)
	return err
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		_ = h.send(newPlainMessage(chatID, msgHelp))
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.handleStart(from.ID))(ctx, chatID)

	case "quiz":
		_ = h.withErrorHandling(h.handleQuiz(from.ID))(ctx, chatID)

	case "streak":
		_ = h.withErrorHandling(h.handleStreak(from.ID))(ctx, chatID)

	case "help":
		_ = h.send(newPlainMessage(chatID, msgHelp))

	case "stop":
		_ = h.withErrorHandling(h.handleStop(from.ID))(ctx, chatID)

	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// answerCallback removes the loading state of a button, optionally with a toast.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
