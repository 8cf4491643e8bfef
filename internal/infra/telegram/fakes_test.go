package telegram

import (
	"context"
	"errors"
	"io"
	"time"

	"birthday_notification_bot/internal/app"
	"birthday_notification_bot/internal/domain/birthday"
	"birthday_notification_bot/internal/domain/channel"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type sentMessage struct {
	chatID int64
	text   string
	opts   *telebot.SendOptions
}

type fakeClient struct {
	sent  []sentMessage
	fails int // number of leading calls that fail
	calls int
}

func (f *fakeClient) SendMessage(chatID int64, text string, opts *telebot.SendOptions) error {
	f.calls++
	if f.calls <= f.fails {
		return errors.New("telegram unavailable")
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, opts: opts})
	return nil
}

type fakeAdmin struct {
	admins   map[string]bool
	added    []*birthday.Birthday
	deleted  []string
	bindings map[channel.Key]string
	err      error
}

func newFakeAdmin(ids ...string) *fakeAdmin {
	f := &fakeAdmin{admins: map[string]bool{}, bindings: map[channel.Key]string{}}
	for _, id := range ids {
		f.admins[id] = true
	}
	return f
}

func (f *fakeAdmin) IsAdmin(_ context.Context, id string) (bool, error) {
	return f.admins[id], nil
}

func (f *fakeAdmin) AddBirthday(_ context.Context, sender string, b *birthday.Birthday) error {
	if !f.admins[sender] {
		return app.ErrNotAuthorized
	}
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, b)
	return nil
}

func (f *fakeAdmin) DeleteBirthday(_ context.Context, sender, externalID string) error {
	if !f.admins[sender] {
		return app.ErrNotAuthorized
	}
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, externalID)
	return nil
}

func (f *fakeAdmin) SetChannel(_ context.Context, sender string, key channel.Key, dest string) error {
	if !f.admins[sender] {
		return app.ErrNotAuthorized
	}
	if f.err != nil {
		return f.err
	}
	f.bindings[key] = dest
	return nil
}

type fakeQueries struct {
	entries   []*birthday.Birthday
	lastCount int
	lastNow   time.Time
	err       error
}

func (f *fakeQueries) List(context.Context) ([]*birthday.Birthday, error) {
	return f.entries, f.err
}

func (f *fakeQueries) Next(_ context.Context, now time.Time, count int) ([]*birthday.Birthday, error) {
	f.lastNow, f.lastCount = now, count
	return f.entries, f.err
}
