package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"birthday_notification_bot/internal/app"
	"birthday_notification_bot/internal/domain/birthday"
	"birthday_notification_bot/internal/domain/channel"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	msgNotAdmin      = "You are not an admin."
	msgInternalError = "Something went wrong. Please try again later."
	birthdayUsage    = "Usage:\n/birthday add <user_id> <name> <mm> <dd>\n/birthday del <user_id>"
)

// AdminCommands is the mutation surface used by the admin handlers.
type AdminCommands interface {
	IsAdmin(ctx context.Context, externalUserID string) (bool, error)
	AddBirthday(ctx context.Context, performingUserID string, b *birthday.Birthday) error
	DeleteBirthday(ctx context.Context, performingUserID string, externalID string) error
	SetChannel(ctx context.Context, performingUserID string, key channel.Key, destinationID string) error
}

var _ AdminCommands = (*app.AdminService)(nil)

type adminHandlers struct {
	admin  AdminCommands
	logger *logrus.Entry
}

// RegisterAdminHandlers registers /birthday, /bset and /lset.
func RegisterAdminHandlers(ctx context.Context, b *telebot.Bot, adminService AdminCommands, baseLogger *logrus.Entry) {
	h := &adminHandlers{admin: adminService, logger: baseLogger}

	b.Handle("/birthday", func(c telebot.Context) error {
		return c.Send(h.birthday(ctx, senderID(c), c.Args()))
	})
	b.Handle("/bset", func(c telebot.Context) error {
		return c.Send(h.setChannel(ctx, senderID(c), channel.KeyBirthday, chatID(c)))
	})
	b.Handle("/lset", func(c telebot.Context) error {
		return c.Send(h.setChannel(ctx, senderID(c), channel.KeyLogs, chatID(c)))
	})
}

func (h *adminHandlers) birthday(ctx context.Context, sender string, args []string) string {
	log := h.logger.WithFields(logrus.Fields{"handler": "/birthday", "sender_id": sender})
	log.Info("Command received")

	if len(args) == 0 {
		return birthdayUsage
	}

	switch args[0] {
	case "add":
		b, err := parseAddArgs(args[1:])
		if err != nil {
			log.WithError(err).Warn("Invalid command format")
			return birthdayUsage
		}
		if err := h.admin.AddBirthday(ctx, sender, b); err != nil {
			return h.reply(log.WithField("external_id", b.ExternalID), err, "Failed to add birthday")
		}
		return fmt.Sprintf("Birthday for %s set to %s.", b.DisplayName, b.Date())

	case "del", "delete", "remove":
		externalID, err := parseDeleteArgs(args[1:])
		if err != nil {
			log.WithError(err).Warn("Invalid command format")
			return birthdayUsage
		}
		if err := h.admin.DeleteBirthday(ctx, sender, externalID); err != nil {
			return h.reply(log.WithField("external_id", externalID), err, "Failed to delete birthday")
		}
		return fmt.Sprintf("Birthday for %s removed.", externalID)

	default:
		return birthdayUsage
	}
}

func (h *adminHandlers) setChannel(ctx context.Context, sender string, key channel.Key, destinationID string) string {
	log := h.logger.WithFields(logrus.Fields{"handler": "set_channel", "sender_id": sender, "channel_key": key})
	log.Info("Command received")

	if err := h.admin.SetChannel(ctx, sender, key, destinationID); err != nil {
		return h.reply(log, err, "Failed to bind channel")
	}
	return fmt.Sprintf("%s set to this chat.", key)
}

// reply maps a service error to the message shown in chat.
func (h *adminHandlers) reply(log *logrus.Entry, err error, failure string) string {
	switch {
	case errors.Is(err, app.ErrNotAuthorized):
		log.Warn("Admin not authorized")
		return msgNotAdmin
	case errors.Is(err, app.ErrInvalidInput):
		log.WithError(err).Warn("Invalid input")
		return birthdayUsage
	default:
		log.WithError(err).Error(failure)
		return msgInternalError
	}
}

func senderID(c telebot.Context) string {
	if c.Sender() == nil {
		return ""
	}
	return strconv.FormatInt(c.Sender().ID, 10)
}

func chatID(c telebot.Context) string {
	if c.Chat() == nil {
		return ""
	}
	return strconv.FormatInt(c.Chat().ID, 10)
}
