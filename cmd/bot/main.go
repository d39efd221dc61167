package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/config"
	"github.com/aliskhannn/learn-words-bot/internal/delivery/telegram"
	"github.com/aliskhannn/learn-words-bot/internal/logger"
	"github.com/aliskhannn/learn-words-bot/internal/service"
	"github.com/aliskhannn/learn-words-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	token, err := cfg.Telegram.BotToken()
	if err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Telegram.Debug
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Запустить бота",
		},
		{
			Command:     "menu",
			Description: "Открыть меню",
		},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeStore()

	trainer, err := service.NewTrainer(ctx, store, trainerOptions(cfg, lg)...)
	if err != nil {
		return err
	}

	handler := telegram.NewHandler(bot, trainer, lg)

	if cfg.Reminder.Schedule != "" {
		scheduler, err := telegram.NewReminderScheduler(cfg.Reminder.Schedule, handler, lg)
		if err != nil {
			return err
		}
		go scheduler.Start(ctx)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.PollTimeout
	updates := bot.GetUpdatesChan(u)
	defer bot.StopReceivingUpdates()

	err = handler.Run(ctx, updates)
	if errors.Is(err, context.Canceled) {
		lg.Info("shutdown signal received")
		return nil
	}
	return err
}

// trainerOptions seeds the trainer from the config; a zero seed keeps
// the trainer's time based default.
func trainerOptions(cfg *config.Config, lg *zap.Logger) []service.TrainerOption {
	opts := []service.TrainerOption{service.WithLogger(lg)}
	if cfg.Random.Seed != 0 {
		opts = append(opts, service.WithRand(rand.New(rand.NewSource(cfg.Random.Seed))))
	}
	return opts
}
