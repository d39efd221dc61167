package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

// BotSender is the part of *tgbotapi.BotAPI used by the handler.
type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Trainer is the training session served by the bot.
type Trainer interface {
	NextQuestion() *entities.Question
	ActiveQuestion() *entities.Question
	SubmitAnswerTo(ctx context.Context, questionID uuid.UUID, index int) (bool, error)
	Statistics() (entities.Statistics, error)
}
