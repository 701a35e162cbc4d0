package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/maine/shibe_inline_bot/internal/app"
	"github.com/maine/shibe_inline_bot/internal/config"
	"github.com/maine/shibe_inline_bot/internal/logger"
	"github.com/maine/shibe_inline_bot/internal/shibe"
	"github.com/maine/shibe_inline_bot/internal/telegram"
	"github.com/maine/shibe_inline_bot/internal/transport"
)

const serviceName = "shibebot"

func main() {
	// Загружаем переменные окружения (токен, уровень логов)
	envCfg, err := config.LoadEnvConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load env config")
	}

	if err := logger.Init(serviceName, envCfg.LogLevel, envCfg.LogJSON); err != nil {
		log.Fatal().Err(err).Msg("init logger")
	}
	if err := tgbotapi.SetLogger(logger.BotLogger()); err != nil {
		log.Fatal().Err(err).Msg("set bot logger")
	}

	rootCfg, err := config.LoadRoot(envCfg.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", envCfg.ConfigPath).Msg("load config")
	}

	log.Info().Msg("Starting Shibe bot...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Один HTTP-клиент на процесс: и для upstream, и для Bot API
	httpClient := transport.NewHTTPClient(rootCfg.HTTP)

	bot, err := telegram.NewBot(envCfg.TelegramBotToken, httpClient, envCfg.TelegramDebug)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}
	log.Info().Str("bot", bot.Self.UserName).Msg("Authorized")

	svc := app.NewInlineService(app.InlineDeps{
		Fetcher: shibe.NewClient(rootCfg.Upstream.BaseURL, httpClient),
		Answerer: telegram.NewClient(bot, telegram.AnswerOptions{
			CacheTime:  rootCfg.Telegram.CacheTime,
			IsPersonal: rootCfg.Telegram.IsPersonal,
		}),
	})

	dispatcher := telegram.NewDispatcher(bot, svc, rootCfg.Telegram.PollTimeout)
	if err := dispatcher.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("dispatcher failed")
	}
}
