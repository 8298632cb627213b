// Package notify sends the optional daily summary over Telegram.
package notify

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aditya10866/personal-pomo/internal/service"
)

// TelegramNotifier pushes the daily report to a single chat.
type TelegramNotifier struct {
	api     *tgbotapi.BotAPI
	chatID  int64
	reports *service.ReportService
	logger  *zap.Logger
}

// NewTelegram authenticates against the Bot API.
func NewTelegram(token string, chatID int64, reports *service.ReportService, logger *zap.Logger) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID, reports: reports, logger: logger}, nil
}

// SendDailyReport builds today's summary and delivers it. Delivery failure
// is returned for logging; nothing retries.
func (n *TelegramNotifier) SendDailyReport(ctx context.Context) error {
	summary, err := n.reports.DailySummary(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("build daily summary: %w", err)
	}

	msg := tgbotapi.NewMessage(n.chatID, summary)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send daily summary: %w", err)
	}

	n.logger.Info("daily report sent", zap.Int64("chat_id", n.chatID))
	return nil
}
