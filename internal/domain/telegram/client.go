package telegram

import "gopkg.in/telebot.v3"

// Client sends messages to a Telegram chat (group, supergroup or channel).
// It keeps the notifier independent of the concrete bot library instance.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) error
}
