// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"
	"strings"
	"time"

	"birthday_notification_bot/internal/app"
	"birthday_notification_bot/internal/domain/birthday"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// BirthdayQueries is the read-only query surface.
type BirthdayQueries interface {
	List(ctx context.Context) ([]*birthday.Birthday, error)
	Next(ctx context.Context, now time.Time, count int) ([]*birthday.Birthday, error)
}

var _ BirthdayQueries = (*app.BirthdayService)(nil)

type queryHandlers struct {
	queries BirthdayQueries
	admin   AdminCommands
	logger  *logrus.Entry
	now     func() time.Time
}

func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	queries BirthdayQueries,
	adminService AdminCommands, // only used to tailor /help
	baseLogger *logrus.Entry,
) {
	h := &queryHandlers{queries: queries, admin: adminService, logger: baseLogger, now: time.Now}

	b.Handle("/blist", func(c telebot.Context) error {
		return c.Send(h.list(ctx, senderID(c)))
	})
	b.Handle("/bnext", func(c telebot.Context) error {
		return c.Send(h.next(ctx, senderID(c), c.Args()))
	})
	b.Handle("/start", func(c telebot.Context) error {
		h.logger.WithFields(logrus.Fields{"command": "/start", "sender_id": senderID(c)}).Info("Processing /start command")
		return c.Send("Hi! I announce birthdays in this group. Use /help for the list of commands.")
	})
	b.Handle("/help", func(c telebot.Context) error {
		return c.Send(h.help(ctx, senderID(c)))
	})
}

func (h *queryHandlers) list(ctx context.Context, sender string) string {
	log := h.logger.WithFields(logrus.Fields{"command": "/blist", "sender_id": sender})
	entries, err := h.queries.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list birthdays")
		return msgInternalError
	}
	log.WithField("count", len(entries)).Info("Listed birthdays")
	return renderList(entries)
}

func (h *queryHandlers) next(ctx context.Context, sender string, args []string) string {
	log := h.logger.WithFields(logrus.Fields{"command": "/bnext", "sender_id": sender})
	count, err := parseCount(args)
	if err != nil {
		log.WithError(err).Warn("Invalid command format")
		return "Usage: /bnext [count], count between 1 and 25"
	}
	entries, err := h.queries.Next(ctx, h.now(), count)
	if err != nil {
		log.WithError(err).Error("Failed to compute upcoming birthdays")
		return msgInternalError
	}
	return renderNext(entries)
}

func (h *queryHandlers) help(ctx context.Context, sender string) string {
	var sb strings.Builder
	sb.WriteString("Available commands:\n\n")
	sb.WriteString("/blist - list all birthdays\n")
	sb.WriteString("/bnext [count] - show the next upcoming birthdays\n")
	sb.WriteString("/help - show this message")

	isAdmin, err := h.admin.IsAdmin(ctx, sender)
	if err != nil {
		h.logger.WithError(err).WithField("sender_id", sender).Warn("Could not check admin status for /help")
	}
	if isAdmin {
		sb.WriteString("\n\nAdmin commands:\n\n")
		sb.WriteString("/birthday add <user_id> <name> <mm> <dd> - add a birthday\n")
		sb.WriteString("/birthday del <user_id> - remove a birthday\n")
		sb.WriteString("/bset - announce birthdays in this chat\n")
		sb.WriteString("/lset - send failure notices to this chat")
	}
	return sb.String()
}
