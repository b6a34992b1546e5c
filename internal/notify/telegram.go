// Package notify pushes notifications to external delivery channels.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/safuramariyam/greenthumb/internal/model"
)

// TelegramNotifier forwards notifications to a Telegram chat. Delivery is
// best effort: send failures are logged and dropped.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

// Announce forwards high-priority notifications; the rest stay in-app only.
func (t *TelegramNotifier) Announce(n model.Notification) {
	if n.Priority != model.PriorityHigh {
		return
	}
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("%s\n%s", n.Title, n.Message))
	if _, err := t.api.Send(msg); err != nil {
		log.Printf("telegram: send notification %s: %v", n.ID, err)
	}
}
