package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/maine/shibe_inline_bot/internal/shibe"
)

// toInlineRequest переводит апдейт Telegram в доменный запрос.
func toInlineRequest(q *tgbotapi.InlineQuery) shibe.InlineRequest {
	return shibe.InlineRequest{
		ID:        q.ID,
		Text:      q.Query,
		Requester: requesterName(q.From),
	}
}

// requesterName - username, если он есть, иначе числовой id.
func requesterName(u *tgbotapi.User) string {
	if u == nil {
		return "unknown"
	}
	if u.UserName != "" {
		return u.UserName
	}
	return fmt.Sprintf("id:%d", u.ID)
}
