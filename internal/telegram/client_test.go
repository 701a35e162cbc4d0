package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maine/shibe_inline_bot/internal/shibe"
)

// mockBotAPI - мок для тестирования Client и Dispatcher
type mockBotAPI struct {
	mu          sync.Mutex
	requests    []tgbotapi.Chattable
	requestFunc func(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	updates     chan tgbotapi.Update
	stopped     bool
}

func (m *mockBotAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, c)
	m.mu.Unlock()

	if m.requestFunc != nil {
		return m.requestFunc(c)
	}
	return &tgbotapi.APIResponse{Ok: true, Result: json.RawMessage("true")}, nil
}

func (m *mockBotAPI) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return m.updates
}

func (m *mockBotAPI) StopReceivingUpdates() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

func (m *mockBotAPI) sent() []tgbotapi.Chattable {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), m.requests...)
}

func TestClient_AnswerInlineQuery(t *testing.T) {
	bot := &mockBotAPI{}
	client := NewClient(bot, AnswerOptions{CacheTime: 5, IsPersonal: true})

	results := []shibe.PhotoResult{
		{ID: "a", PhotoURL: "https://x/a.jpg", ThumbURL: "https://x/a.jpg"},
		{ID: "b", PhotoURL: "https://x/b.jpg", ThumbURL: "https://x/b.jpg"},
	}
	require.NoError(t, client.AnswerInlineQuery(context.Background(), "q-1", results))

	sent := bot.sent()
	require.Len(t, sent, 1)
	cfg, ok := sent[0].(tgbotapi.InlineConfig)
	require.True(t, ok)
	assert.Equal(t, "q-1", cfg.InlineQueryID)
	assert.Equal(t, 5, cfg.CacheTime)
	assert.True(t, cfg.IsPersonal)

	require.Len(t, cfg.Results, 2)
	first, ok := cfg.Results[0].(tgbotapi.InlineQueryResultPhoto)
	require.True(t, ok)
	assert.Equal(t, "photo", first.Type)
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "https://x/a.jpg", first.URL)
	assert.Equal(t, "https://x/a.jpg", first.ThumbURL)
	second := cfg.Results[1].(tgbotapi.InlineQueryResultPhoto)
	assert.Equal(t, "b", second.ID)
}

func TestClient_AnswerInlineQuery_EmptyResults(t *testing.T) {
	bot := &mockBotAPI{}
	client := NewClient(bot, AnswerOptions{})

	require.NoError(t, client.AnswerInlineQuery(context.Background(), "q-2", nil))

	cfg := bot.sent()[0].(tgbotapi.InlineConfig)
	require.NotNil(t, cfg.Results)
	data, err := json.Marshal(cfg.Results)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestClient_AnswerInlineQuery_Errors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		apiErr := errors.New("Bad Request: query is too old")
		bot := &mockBotAPI{
			requestFunc: func(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
				return nil, apiErr
			},
		}
		client := NewClient(bot, AnswerOptions{})

		err := client.AnswerInlineQuery(context.Background(), "q-3", nil)
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("cancelled context", func(t *testing.T) {
		bot := &mockBotAPI{}
		client := NewClient(bot, AnswerOptions{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := client.AnswerInlineQuery(ctx, "q-4", nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, bot.sent())
	})
}

func TestRequesterName(t *testing.T) {
	tests := []struct {
		name string
		user *tgbotapi.User
		want string
	}{
		{name: "username", user: &tgbotapi.User{ID: 1, UserName: "doge"}, want: "doge"},
		{name: "numeric id fallback", user: &tgbotapi.User{ID: 12345}, want: "id:12345"},
		{name: "no user", user: nil, want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requesterName(tt.user))
		})
	}
}

func TestToInlineRequest(t *testing.T) {
	req := toInlineRequest(&tgbotapi.InlineQuery{
		ID:    "42",
		Query: "5 cats",
		From:  &tgbotapi.User{ID: 7},
	})

	assert.Equal(t, shibe.InlineRequest{ID: "42", Text: "5 cats", Requester: "id:7"}, req)
}
