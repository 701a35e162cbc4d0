package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/maine/shibe_inline_bot/internal/shibe"
)

// ErrNotConfigured возвращается, когда сервис запущен без обязательных зависимостей.
var ErrNotConfigured = errors.New("inline service dependencies not configured")

// Fetcher запрашивает картинки у upstream API.
type Fetcher interface {
	Fetch(ctx context.Context, query shibe.Query) ([]shibe.PhotoResult, error)
}

// Answerer отправляет результаты в ответ на инлайн-запрос.
type Answerer interface {
	AnswerInlineQuery(ctx context.Context, queryID string, results []shibe.PhotoResult) error
}

// InlineDeps перечисляет зависимости сервиса.
type InlineDeps struct {
	Fetcher  Fetcher
	Answerer Answerer
}

// InlineService обрабатывает инлайн-запросы: разбор -> запрос картинок -> ответ.
// Общего изменяемого состояния нет, вызовы независимы друг от друга.
type InlineService struct {
	fetcher  Fetcher
	answerer Answerer
}

// NewInlineService создаёт новый экземпляр сервиса.
func NewInlineService(deps InlineDeps) *InlineService {
	return &InlineService{
		fetcher:  deps.Fetcher,
		answerer: deps.Answerer,
	}
}

// HandleInlineQuery реализует telegram.InlineHandler.
// При ошибке upstream ответ не отправляется: пользователь просто не видит результатов.
func (s *InlineService) HandleInlineQuery(ctx context.Context, req shibe.InlineRequest) error {
	if s.fetcher == nil || s.answerer == nil {
		return ErrNotConfigured
	}

	logger := log.With().
		Str("request_id", uuid.NewString()).
		Str("inline_query_id", req.ID).
		Logger()

	logger.Info().Str("from", req.Requester).Msg("Inline query received")

	query := shibe.ParseQuery(req.Text)
	logger.Debug().
		Str("endpoint", query.Endpoint.String()).
		Int("count", query.Count).
		Msg("Query parsed")

	results, err := s.fetcher.Fetch(ctx, query)
	if err != nil {
		return fmt.Errorf("request images: %w", err)
	}

	logger.Debug().Int("results", len(results)).Msg("Sending answer...")

	if err := s.answerer.AnswerInlineQuery(ctx, req.ID, results); err != nil {
		return fmt.Errorf("answer inline query: %w", err)
	}

	return nil
}
