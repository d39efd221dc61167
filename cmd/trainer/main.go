package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/config"
	"github.com/aliskhannn/learn-words-bot/internal/delivery/console"
	"github.com/aliskhannn/learn-words-bot/internal/logger"
	"github.com/aliskhannn/learn-words-bot/internal/service"
	"github.com/aliskhannn/learn-words-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.NewInteractive(cfg)
	if err != nil {
		log.Fatal(err)
	}

	err = run(cfg, lg)
	_ = lg.Sync()
	if err != nil {
		lg.Error("trainer stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []service.TrainerOption{service.WithLogger(lg)}
	if cfg.Random.Seed != 0 {
		opts = append(opts, service.WithRand(rand.New(rand.NewSource(cfg.Random.Seed))))
	}

	trainer, err := service.NewTrainer(ctx, store, opts...)
	if err != nil {
		return err
	}

	err = console.NewApp(os.Stdin, os.Stdout, trainer, lg).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
