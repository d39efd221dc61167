package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/service"
)

// Remind asks the update loop to send a practice reminder. It never blocks:
// a reminder that is still pending absorbs the new one.
func (h *Handler) Remind() {
	select {
	case h.reminders <- struct{}{}:
	default:
	}
}

func (h *Handler) sendReminder() {
	if h.lastChatID == 0 {
		h.logger.Debug("reminder skipped: no active chat")
		return
	}

	stats, err := h.trainer.Statistics()
	if err != nil {
		if !errors.Is(err, service.ErrEmptyDictionary) {
			h.logger.Error("failed to compute statistics for reminder", zap.Error(err))
		}
		return
	}

	left := stats.Left()
	if left == 0 {
		h.logger.Debug("reminder skipped: everything learned")
		return
	}

	msg := newPlainMessage(h.lastChatID, formatReminder(left))
	msg.ReplyMarkup = buildMenuKeyboard()
	h.send(msg)

	h.logger.Info("reminder sent",
		zap.Int64("chat_id", h.lastChatID),
		zap.Int("left", left),
	)
}

// Reminder is notified on every tick of the schedule.
type Reminder interface {
	Remind()
}

// ReminderScheduler fires practice reminders on a cron schedule.
type ReminderScheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewReminderScheduler validates the schedule and registers the reminder job.
func NewReminderScheduler(schedule string, reminder Reminder, logger *zap.Logger) (*ReminderScheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(schedule, func() {
		logger.Debug("cron triggered: practice reminder")
		reminder.Remind()
	})
	if err != nil {
		return nil, fmt.Errorf("add reminder job %q: %w", schedule, err)
	}

	return &ReminderScheduler{cron: c, logger: logger}, nil
}

// Start runs the scheduler until ctx is done.
func (s *ReminderScheduler) Start(ctx context.Context) {
	s.cron.Start()
	s.logger.Info("reminder scheduler started")

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("reminder scheduler stopped")
}
