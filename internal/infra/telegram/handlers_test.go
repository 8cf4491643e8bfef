package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"birthday_notification_bot/internal/app"
	"birthday_notification_bot/internal/domain/birthday"
	"birthday_notification_bot/internal/domain/channel"
)

func TestBirthdayCommand(t *testing.T) {
	admin := newFakeAdmin("1")
	h := &adminHandlers{admin: admin, logger: discardLogger()}
	ctx := context.Background()

	if got := h.birthday(ctx, "1", nil); got != birthdayUsage {
		t.Errorf("no args reply = %q", got)
	}
	if got := h.birthday(ctx, "1", []string{"add", "42", "Ana", "7"}); got != birthdayUsage {
		t.Errorf("short add reply = %q", got)
	}

	got := h.birthday(ctx, "1", []string{"add", "42", "Ana", "Maria", "7", "1"})
	if got != "Birthday for Ana Maria set to 07/01." {
		t.Errorf("add reply = %q", got)
	}
	if len(admin.added) != 1 || admin.added[0].DisplayName != "Ana Maria" {
		t.Errorf("added = %+v", admin.added)
	}

	if got := h.birthday(ctx, "1", []string{"del", "42"}); !strings.Contains(got, "removed") {
		t.Errorf("del reply = %q", got)
	}
	if len(admin.deleted) != 1 || admin.deleted[0] != "42" {
		t.Errorf("deleted = %v", admin.deleted)
	}
}

func TestBirthdayCommandRefusesNonAdmin(t *testing.T) {
	admin := newFakeAdmin("1")
	h := &adminHandlers{admin: admin, logger: discardLogger()}

	got := h.birthday(context.Background(), "2", []string{"add", "42", "Ana", "7", "1"})
	if got != msgNotAdmin {
		t.Errorf("reply = %q, want %q", got, msgNotAdmin)
	}
	if len(admin.added) != 0 {
		t.Errorf("added = %+v", admin.added)
	}
}

func TestBirthdayCommandErrors(t *testing.T) {
	admin := newFakeAdmin("1")
	h := &adminHandlers{admin: admin, logger: discardLogger()}

	admin.err = app.ErrInvalidInput
	if got := h.birthday(context.Background(), "1", []string{"add", "42", "Ana", "13", "1"}); got != birthdayUsage {
		t.Errorf("invalid input reply = %q", got)
	}
	admin.err = errors.New("disk full")
	if got := h.birthday(context.Background(), "1", []string{"del", "42"}); got != msgInternalError {
		t.Errorf("storage error reply = %q", got)
	}
}

func TestSetChannelCommand(t *testing.T) {
	admin := newFakeAdmin("1")
	h := &adminHandlers{admin: admin, logger: discardLogger()}

	if got := h.setChannel(context.Background(), "2", channel.KeyBirthday, "-100"); got != msgNotAdmin {
		t.Errorf("non-admin reply = %q", got)
	}
	if got := h.setChannel(context.Background(), "1", channel.KeyBirthday, "-100"); !strings.Contains(got, "BIRTHDAY_CHANNEL") {
		t.Errorf("reply = %q", got)
	}
	if admin.bindings[channel.KeyBirthday] != "-100" {
		t.Errorf("bindings = %v", admin.bindings)
	}
}

func TestQueryCommands(t *testing.T) {
	queries := &fakeQueries{entries: []*birthday.Birthday{{ExternalID: "1", DisplayName: "Jo", Month: 1, Day: 5}}}
	fixed := time.Date(2025, 12, 30, 9, 0, 0, 0, time.UTC)
	h := &queryHandlers{queries: queries, admin: newFakeAdmin("1"), logger: discardLogger(), now: func() time.Time { return fixed }}
	ctx := context.Background()

	if got := h.list(ctx, "2"); !strings.Contains(got, "Jo: 01/05") {
		t.Errorf("list reply = %q", got)
	}

	if got := h.next(ctx, "2", []string{"5"}); !strings.Contains(got, "Jo: 01/05") {
		t.Errorf("next reply = %q", got)
	}
	if queries.lastCount != 5 || !queries.lastNow.Equal(fixed) {
		t.Errorf("Next called with count=%d now=%v", queries.lastCount, queries.lastNow)
	}
	if got := h.next(ctx, "2", []string{"zero"}); !strings.HasPrefix(got, "Usage") {
		t.Errorf("bad count reply = %q", got)
	}

	queries.err = errors.New("db down")
	if got := h.list(ctx, "2"); got != msgInternalError {
		t.Errorf("list error reply = %q", got)
	}
}

func TestHelpShowsAdminCommandsToAdmins(t *testing.T) {
	h := &queryHandlers{queries: &fakeQueries{}, admin: newFakeAdmin("1"), logger: discardLogger(), now: time.Now}
	ctx := context.Background()

	if got := h.help(ctx, "2"); strings.Contains(got, "/birthday add") {
		t.Errorf("non-admin help lists admin commands: %q", got)
	}
	if got := h.help(ctx, "1"); !strings.Contains(got, "/bset") {
		t.Errorf("admin help = %q", got)
	}
}
