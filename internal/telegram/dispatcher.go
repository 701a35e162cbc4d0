package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/maine/shibe_inline_bot/internal/shibe"
)

// ErrNoHandler возвращается, если диспетчер создан без обработчика.
var ErrNoHandler = errors.New("inline query handler not configured")

// InlineHandler обрабатывает один инлайн-запрос.
type InlineHandler interface {
	HandleInlineQuery(ctx context.Context, req shibe.InlineRequest) error
}

// Dispatcher получает апдейты через long polling и раздаёт инлайн-запросы обработчику.
type Dispatcher struct {
	bot         BotAPI
	handler     InlineHandler
	pollTimeout int
}

// NewDispatcher создаёт диспетчер. pollTimeout - в секундах.
func NewDispatcher(bot BotAPI, handler InlineHandler, pollTimeout int) *Dispatcher {
	return &Dispatcher{
		bot:         bot,
		handler:     handler,
		pollTimeout: pollTimeout,
	}
}

// Run блокируется до отмены ctx или закрытия канала апдейтов.
// Каждый инлайн-запрос обрабатывается в отдельной горутине без ограничения их числа;
// при остановке незавершённые обработчики не ждём.
func (d *Dispatcher) Run(ctx context.Context) error {
	if d.bot == nil || d.handler == nil {
		return ErrNoHandler
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = d.pollTimeout
	u.AllowedUpdates = []string{"inline_query"}

	updates := d.bot.GetUpdatesChan(u)
	log.Info().Msg("Dispatching requests...")

	for {
		select {
		case <-ctx.Done():
			d.bot.StopReceivingUpdates()
			// Поллер tgbotapi может висеть на отправке в канал, пока его не закроют.
			go drain(updates)
			log.Info().Msg("Dispatcher stopped")
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			if upd.InlineQuery == nil {
				continue
			}
			go d.handle(ctx, toInlineRequest(upd.InlineQuery))
		}
	}
}

// drain отбрасывает апдейты, пришедшие после остановки, до закрытия канала.
func drain(updates tgbotapi.UpdatesChannel) {
	for range updates {
	}
}

func (d *Dispatcher) handle(ctx context.Context, req shibe.InlineRequest) {
	if err := d.handler.HandleInlineQuery(ctx, req); err != nil {
		log.Error().
			Err(err).
			Str("inline_query_id", req.ID).
			Str("from", req.Requester).
			Msg("Failed to handle inline query")
	}
}
