package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/service"
)

type Handler struct {
	bot       BotSender
	trainer   Trainer
	logger    *zap.Logger
	reminders chan struct{}

	// lastChatID is the chat reminders go to, zero until someone writes to the bot.
	lastChatID int64
}

func NewHandler(bot BotSender, trainer Trainer, logger *zap.Logger) *Handler {
	return &Handler{
		bot:       bot,
		trainer:   trainer,
		logger:    logger,
		reminders: make(chan struct{}, 1),
	}
}

// Run serves updates until ctx is done, the updates channel is closed
// or the dictionary can no longer be persisted.
func (h *Handler) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := h.handleUpdate(ctx, update); err != nil {
				return err
			}
		case <-h.reminders:
			h.sendReminder()
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		return h.handleCallback(ctx, update.CallbackQuery)
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return nil
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	h.lastChatID = chatID

	if !update.Message.IsCommand() {
		h.sendMenu(chatID)
		return nil
	}

	switch update.Message.Command() {
	case "start":
		h.send(newMessage(chatID, welcomeMarkdownV2()))
		h.sendMenu(chatID)
	case "menu":
		h.sendMenu(chatID)
	default:
		h.send(newPlainMessage(chatID, msgUnknownCommand))
	}

	return nil
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	// Remove the user's "clock".
	defer h.request(tgbotapi.NewCallback(cb.ID, ""))

	if cb.Message == nil {
		h.logger.Debug("callback without message", zap.String("data", cb.Data))
		return nil
	}

	chatID := cb.Message.Chat.ID
	h.lastChatID = chatID

	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionLearn:
		h.sendNextQuestion(chatID)
	case actionStatistics:
		return h.withErrorHandling(h.statisticsHandler())(ctx, chatID)
	case actionMenu:
		h.sendMenu(chatID)
	case actionAnswer:
		return h.withErrorHandling(h.answerHandler(cb.Message.MessageID, data.Params))(ctx, chatID)
	default:
		h.logger.Warn("unknown callback action", zap.String("data", data.Raw))
	}

	return nil
}

func (h *Handler) answerHandler(messageID int, params []string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		questionID, index, err := parseAnswerParams(params)
		if err != nil {
			h.logger.Warn("invalid answer callback",
				zap.Strings("params", params),
				zap.Error(err),
			)
			return nil
		}

		q := h.trainer.ActiveQuestion()
		if q == nil || q.ID != questionID {
			h.send(newPlainMessage(chatID, msgStaleQuestion))
			return nil
		}

		correct, err := h.trainer.SubmitAnswerTo(ctx, questionID, index)
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}

		// The question is answered, its buttons are no longer useful.
		h.request(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{
			InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
		}))

		if correct {
			h.send(newPlainMessage(chatID, msgCorrect))
		} else {
			h.send(newPlainMessage(chatID, formatWrongAnswer(q.CorrectAnswer)))
		}

		h.sendNextQuestion(chatID)
		return nil
	}
}

func (h *Handler) statisticsHandler() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		stats, err := h.trainer.Statistics()
		if errors.Is(err, service.ErrEmptyDictionary) {
			h.send(newPlainMessage(chatID, msgEmptyDictionary))
			return nil
		}
		if err != nil {
			return fmt.Errorf("compute statistics: %w", err)
		}

		msg := newMessage(chatID, formatStatistics(stats))
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)
		return nil
	}
}

func (h *Handler) sendNextQuestion(chatID int64) {
	q := h.trainer.NextQuestion()
	if q == nil {
		msg := newPlainMessage(chatID, msgAllLearned)
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)
		return
	}

	msg := newMessage(chatID, formatQuestion(q))
	msg.ReplyMarkup = buildQuestionKeyboard(q)
	h.send(msg)
}

func (h *Handler) sendMenu(chatID int64) {
	msg := newPlainMessage(chatID, msgMenu)
	msg.ReplyMarkup = buildMenuKeyboard()
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

func (h *Handler) request(c tgbotapi.Chattable) {
	if _, err := h.bot.Request(c); err != nil {
		h.logger.Error("failed to request telegram api",
			zap.Error(err),
		)
	}
}
