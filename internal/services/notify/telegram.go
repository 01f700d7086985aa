package notify

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"SignalDesk/internal/domain/models"
	"SignalDesk/pkg/logger"
)

// Telegram pushes High-conviction ideas to a chat. Lower-conviction ideas are
// filtered out to keep the channel quiet.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *logger.Logger
}

// NewTelegram creates a notifier bound to one chat.
func NewTelegram(token string, chatID int64, log *logger.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID, logger: log}, nil
}

// NotifyIdeas sends one message listing the High-conviction ideas of a cycle.
// No High-conviction ideas means no message.
func (t *Telegram) NotifyIdeas(ctx context.Context, ideas []models.TradeIdea) error {
	var lines []string
	for _, idea := range ideas {
		if idea.Conviction != models.ConvictionHigh {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s] %s: %s (edge %s, %s)",
			idea.Tag, idea.Title, idea.Summary, idea.EdgeEstimate, idea.Horizon))
	}
	if len(lines) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.chatID, "High conviction ideas:\n"+strings.Join(lines, "\n"))
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}

	t.logger.Debug("telegram alert sent", logger.Int("ideas", len(lines)))
	return nil
}
