package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

// buildMenuKeyboard builds keyboard for the main menu.
func buildMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Изучать слова", buildActionCallback(actionLearn)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", buildActionCallback(actionStatistics)),
		),
	)
}

// buildQuestionKeyboard builds one row per option and a row returning to the menu.
func buildQuestionKeyboard(q *entities.Question) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.AskAnswer)+1)
	for i, option := range q.AskAnswer {
		button := tgbotapi.NewInlineKeyboardButtonData(option, buildAnswerCallback(q.ID, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Меню", buildActionCallback(actionMenu)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
