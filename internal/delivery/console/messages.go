package console

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

const (
	msgMenu            = "Меню:\n1 – Учить слова\n2 – Статистика\n0 – Выход"
	msgUnknownMenuItem = "Введите 1, 2 или 0"
	msgAllLearned      = "Все слова в словаре выучены"
	msgEmptyDictionary = "Словарь пуст, статистики нет"
	msgCorrect         = "Правильно!"
	msgBye             = "До встречи!"
)

// formatQuestion renders the prompt and 1-indexed options. Option 0 returns to the menu.
func formatQuestion(q *entities.Question) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(q.CorrectAnswer.Original)
	sb.WriteString(":\n")
	for i, option := range q.AskAnswer {
		fmt.Fprintf(&sb, "%d - %s\n", i+1, option)
	}
	sb.WriteString("----------\n")
	sb.WriteString("0 - Меню")

	return sb.String()
}

func formatWrongAnswer(q *entities.Question) string {
	return fmt.Sprintf("Неправильно! %s – это %s", q.CorrectAnswer.Original, q.CorrectAnswer.Translation)
}

func formatInvalidChoice(options int) string {
	return fmt.Sprintf("Введите число от 0 до %d", options)
}

func formatStatistics(s entities.Statistics) string {
	return fmt.Sprintf("Выучено %d из %d слов | %s%%", s.LearnCount, s.TotalCount, s.Percent)
}
