package telegram

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"birthday_notification_bot/internal/domain/notification"
	domaintg "birthday_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	defaultSendAttempts = 3
	defaultSendBackoff  = 2 * time.Second
)

// Notifier delivers birthday payloads to Telegram chats as HTML messages.
type Notifier struct {
	client   domaintg.Client
	logger   *logrus.Entry
	attempts int
	backoff  time.Duration
}

var _ notification.Notifier = (*Notifier)(nil)

func NewNotifier(client domaintg.Client, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client:   client,
		logger:   logger,
		attempts: defaultSendAttempts,
		backoff:  defaultSendBackoff,
	}
}

func (n *Notifier) NotifyToday(ctx context.Context, destinationID string, payload notification.TodayPayload) error {
	return n.send(ctx, destinationID, renderToday(payload), telebot.ModeHTML)
}

func (n *Notifier) NotifyMonthly(ctx context.Context, destinationID string, payload notification.MonthlyPayload) error {
	return n.send(ctx, destinationID, renderMonthly(payload), telebot.ModeHTML)
}

func (n *Notifier) NotifyFailure(ctx context.Context, destinationID string, text string) error {
	return n.send(ctx, destinationID, text, telebot.ModeDefault)
}

// send retries failed deliveries with a linear backoff until attempts run out or ctx ends.
func (n *Notifier) send(ctx context.Context, destinationID, text string, mode telebot.ParseMode) error {
	chatID, err := strconv.ParseInt(destinationID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", destinationID, err)
	}
	opts := &telebot.SendOptions{ParseMode: mode, DisableWebPagePreview: true}

	log := n.logger.WithField("destination_id", destinationID)
	var lastErr error
	for attempt := 1; attempt <= n.attempts; attempt++ {
		if lastErr = n.client.SendMessage(chatID, text, opts); lastErr == nil {
			return nil
		}
		log.WithError(lastErr).WithField("attempt", attempt).Warn("Telegram send failed")
		if attempt == n.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("send to %s: %w", destinationID, ctx.Err())
		case <-time.After(time.Duration(attempt) * n.backoff):
		}
	}
	return fmt.Errorf("send to %s after %d attempts: %w", destinationID, n.attempts, lastErr)
}
