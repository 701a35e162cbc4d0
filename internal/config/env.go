package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// EnvConfig содержит токены и другие переменные окружения.
type EnvConfig struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
	TelegramDebug    bool   `env:"TELEGRAM_DEBUG" envDefault:"false"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON          bool   `env:"LOG_JSON" envDefault:"false"`
	ConfigPath       string `env:"CONFIG_PATH" envDefault:"configs/bot.yaml"`
}

// LoadEnvConfig подгружает .env (если есть) и разбирает переменные окружения.
// Возвращает ошибку, если TELEGRAM_BOT_TOKEN отсутствует или пустой.
func LoadEnvConfig(dotenvFiles ...string) (*EnvConfig, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &EnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
