package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init настраивает глобальный zerolog-логгер.
// level - одно из trace/debug/info/warn/error; пустая строка означает info.
func Init(serviceName, level string, jsonOutput bool) error {
	return InitWithWriter(os.Stdout, serviceName, level, jsonOutput)
}

// InitWithWriter - то же, что Init, но с явным выводом.
func InitWithWriter(out io.Writer, serviceName, level string, jsonOutput bool) error {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "timestamp"
	zerolog.MessageFieldName = "message"

	lvl := zerolog.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}

	if !jsonOutput {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				return fmt.Sprintf("| %-6s|", i)
			},
			FormatMessage: func(i interface{}) string {
				return fmt.Sprintf("| %s", i)
			},
			FormatFieldName: func(i interface{}) string {
				return fmt.Sprintf("%s:", i)
			},
			FormatFieldValue: func(i interface{}) string {
				return fmt.Sprintf("%s", i)
			},
		}
	}

	log.Logger = zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Debug().Str("level", lvl.String()).Msg("Logger initialized")
	return nil
}

// botLogger перенаправляет логи telegram-bot-api в zerolog.
// Библиотека пишет туда в основном ошибки long polling, поэтому уровень warn.
type botLogger struct{}

// BotLogger возвращает адаптер для tgbotapi.SetLogger.
func BotLogger() tgbotapi.BotLogger {
	return botLogger{}
}

func (botLogger) Println(v ...interface{}) {
	log.Warn().Str("component", "tgbotapi").Msg(strings.TrimSpace(fmt.Sprintln(v...)))
}

func (botLogger) Printf(format string, v ...interface{}) {
	log.Warn().Str("component", "tgbotapi").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
