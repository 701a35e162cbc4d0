package telegram

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/maine/shibe_inline_bot/internal/shibe"
)

// BotAPI - подмножество *tgbotapi.BotAPI, которое использует бот.
// Это позволяет легко создавать моки для тестирования.
type BotAPI interface {
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Убеждаемся, что *tgbotapi.BotAPI реализует интерфейс BotAPI.
var _ BotAPI = (*tgbotapi.BotAPI)(nil)

// NewBot авторизует бота через getMe, используя общий HTTP-клиент процесса.
func NewBot(token string, httpClient *http.Client, debug bool) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	bot.Debug = debug
	return bot, nil
}

// AnswerOptions - параметры answerInlineQuery.
type AnswerOptions struct {
	CacheTime  int
	IsPersonal bool
}

// Client отвечает на инлайн-запросы.
type Client struct {
	bot  BotAPI
	opts AnswerOptions
}

// NewClient создаёт клиента. bot обязателен.
func NewClient(bot BotAPI, opts AnswerOptions) *Client {
	return &Client{
		bot:  bot,
		opts: opts,
	}
}

// AnswerInlineQuery реализует app.Answerer.
// Порядок результатов сохраняется, пустой список отправляется как [].
func (c *Client) AnswerInlineQuery(ctx context.Context, queryID string, results []shibe.PhotoResult) error {
	// tgbotapi не принимает context, поэтому проверяем его до отправки
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := tgbotapi.InlineConfig{
		InlineQueryID: queryID,
		Results:       buildResults(results),
		CacheTime:     c.opts.CacheTime,
		IsPersonal:    c.opts.IsPersonal,
	}

	if _, err := c.bot.Request(cfg); err != nil {
		return fmt.Errorf("answerInlineQuery: %w", err)
	}

	log.Debug().
		Str("inline_query_id", queryID).
		Int("results", len(results)).
		Msg("Answer sent")
	return nil
}

func buildResults(results []shibe.PhotoResult) []interface{} {
	out := make([]interface{}, 0, len(results))
	for _, r := range results {
		out = append(out, tgbotapi.NewInlineQueryResultPhotoWithThumb(r.ID, r.PhotoURL, r.ThumbURL))
	}
	return out
}
