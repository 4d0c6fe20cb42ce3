package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/codehero.git/internal/bot"
	"github.com/DanRulev/codehero.git/internal/config"
	"github.com/DanRulev/codehero.git/internal/lessons"
	"github.com/DanRulev/codehero.git/internal/repository"
	"github.com/DanRulev/codehero.git/internal/service"
	"github.com/DanRulev/codehero.git/internal/storage/cache"
	"github.com/DanRulev/codehero.git/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer database.Close()

	repos := repository.NewRepository(database, cfg.DB.Driver)

	catalog, err := lessons.Load()
	if err != nil {
		logger.Fatal("failed load lesson catalog", zap.Error(err))
	}
	logger.Info("lesson catalog loaded", zap.Int("languages", len(catalog.Languages())))

	services := service.InitServices(catalog, repos, cfg.App.PointsPerCorrect, logger)
	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.App.Timeout, services, cache, logger)
	if err != nil {
		logger.Fatal("failed init telegram bot", zap.Error(err))
		return
	}

	handler.Start(ctx)
}
