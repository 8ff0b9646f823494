package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/letihelper/schedule_bot/internal/app"
	"github.com/letihelper/schedule_bot/internal/client"
	"github.com/letihelper/schedule_bot/internal/config"
	"github.com/letihelper/schedule_bot/internal/controller"
	"github.com/letihelper/schedule_bot/internal/repository"
	"github.com/letihelper/schedule_bot/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting schedule bot",
		zap.String("environment", cfg.Environment),
		zap.String("schedule_api", cfg.ScheduleAPIURL))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}
	logger.Info("✅ Migrations applied")

	// Репозитории и сервисы
	userRepo := repository.NewUserRepository(pool)
	requestLogRepo := repository.NewRequestLogRepository(pool)

	scheduleClient := client.NewScheduleClient(cfg.ScheduleAPIURL, logger)

	userService := service.NewUserService(userRepo, logger)
	historyService := service.NewHistoryService(requestLogRepo, logger)
	scheduleService := service.NewScheduleService(scheduleClient, logger)

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		scheduleService,
		userService,
		historyService,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}
