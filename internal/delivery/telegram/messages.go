// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

const (
	msgMenu            = "Меню:"
	msgCorrect         = "Правильно!"
	msgAllLearned      = "Все слова в словаре выучены"
	msgStaleQuestion   = "Этот вопрос уже неактуален"
	msgEmptyDictionary = "Словарь пуст, статистики пока нет."
	msgInternalError   = "Что‑то пошло не так. Попробуйте позже."
	msgUnknownCommand  = "Неизвестная команда. Доступные команды:\n\n/start — начать\n/menu — открыть меню"
)

const progressBarLength = 20

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

func welcomeMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("Learn Words Bot"))
	sb.WriteString(md(" поможет выучить слова из вашего словаря."))
	sb.WriteString("\n\n")
	sb.WriteString(md("Бот показывает слово и четыре варианта перевода. "))
	sb.WriteString(md(fmt.Sprintf("Слово считается выученным после %d правильных ответов.", entities.LearnedThreshold)))
	sb.WriteString("\n\n")
	sb.WriteString(md("Нажмите /menu, чтобы открыть меню."))

	return sb.String()
}

// formatQuestion renders the prompt of a question; options go to the keyboard.
func formatQuestion(q *entities.Question) string {
	return fmt.Sprintf("📖 %s\n\n%s", bold(q.CorrectAnswer.Original), md("Выберите перевод:"))
}

func formatWrongAnswer(w *entities.Word) string {
	return fmt.Sprintf("Неправильно! %s – это %s", w.Original, w.Translation)
}

func formatStatistics(s entities.Statistics) string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		bold("📊 Статистика"),
		md(buildProgressBar(s.LearnCount, s.TotalCount, progressBarLength)),
		md(fmt.Sprintf("Выучено %d из %d слов | %s%%", s.LearnCount, s.TotalCount, s.Percent)),
	)
}

func formatReminder(left int) string {
	return fmt.Sprintf("⏰ Пора повторить слова! Осталось выучить: %d", left)
}

// buildProgressBar creates ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := current * length / total
	if filled > length {
		filled = length
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
	return fmt.Sprintf("[%s]", bar)
}
