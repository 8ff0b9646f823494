package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultScheduleAPIURL = "https://digital.etu.ru/api/mobile/schedule"

type Config struct {
	TelegramToken  string
	DBDSN          string
	ScheduleAPIURL string
	MigrationsPath string
	Environment    string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	}

	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		DBDSN:          os.Getenv("DB_DSN"),
		ScheduleAPIURL: os.Getenv("SCHEDULE_API_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		Environment:    os.Getenv("ENV"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.ScheduleAPIURL == "" {
		cfg.ScheduleAPIURL = defaultScheduleAPIURL
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}
