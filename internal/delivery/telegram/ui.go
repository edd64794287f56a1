package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

const lockedPrefix = "🔒 "

// buildQuestionKeyboard builds the option buttons and the primary button of a session.
func buildQuestionKeyboard(s entities.Session) tgbotapi.InlineKeyboardMarkup {
	q := s.Question()

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, key := range q.Keys() {
		label := fmt.Sprintf("%s %s. %s", optionIcon(s.OptionState(key)), key, q.Options[key])
		data := buildSelectCallback(s.ID, s.Index(), key)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(primaryLabel(s), buildPressCallback(s.ID, s.Index())),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// primaryLabel marks the primary button as locked while nothing is selected.
func primaryLabel(s entities.Session) string {
	if !s.CanPress() {
		return lockedPrefix + s.ButtonLabel()
	}
	return s.ButtonLabel()
}

// buildPlayKeyboard builds the keyboard of the daily announcement.
func buildPlayKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Play", buildPlayCallback()),
		),
	)
}
