// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "🎨 Welcome to the Daily Art Quiz!\n\n" +
		"Every day there is a new artwork and seven questions about it. " +
		"Answer them all to keep your streak going.\n\n" +
		"/quiz starts today's quiz\n/streak shows your streak\n/stop turns off the daily reminder"
	msgHelp = "/quiz start today's quiz\n" +
		"/streak show your current and best streak\n" +
		"/stop stop the daily announcement\n" +
		"/start subscribe again"
	msgUnknownCommand  = "Unknown command. Send /help to see what I can do."
	msgQuizUnavailable = "Today's quiz is not available right now. Please try again later."
	msgInternalError   = "Something went wrong. Please try again later."
	msgUnsubscribed    = "You will no longer get the daily announcement. Send /start to subscribe again."
)

// Callback toasts.
const (
	toastChooseFirst    = "Choose an answer first"
	toastAnswerLocked   = "The answer is already revealed"
	toastSessionExpired = "This quiz is over. Send /quiz to play again."
	toastStale          = "This question is no longer active"
	toastRecordFailed   = "Could not save your result, press again"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string, kb *tgbotapi.InlineKeyboardMarkup) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	edit.ReplyMarkup = kb
	return edit
}
