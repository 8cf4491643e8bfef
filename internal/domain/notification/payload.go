// internal/domain/notification/payload.go
package notification

import (
	"context"
	"time"

	"birthday_notification_bot/internal/domain/birthday"
)

// TodayEntry is one person celebrating today.
type TodayEntry struct {
	Name       string
	SubjectRef string // platform user ID, used to mention the person
}

// TodayPayload lists everyone whose birthday is today.
type TodayPayload struct {
	Entries []TodayEntry
}

// MonthlyEntry is one birthday in the monthly roundup.
type MonthlyEntry struct {
	Name  string
	Month int
	Day   int
}

// MonthlyPayload is the roundup of all birthdays in a month.
type MonthlyPayload struct {
	MonthLabel string // e.g. "July"
	Entries    []MonthlyEntry
}

// Notifier renders payloads and delivers them to a destination channel.
// Delivery is fire-and-forget from the caller's point of view; retries belong to the implementation.
type Notifier interface {
	NotifyToday(ctx context.Context, destinationID string, payload TodayPayload) error
	NotifyMonthly(ctx context.Context, destinationID string, payload MonthlyPayload) error
	// NotifyFailure posts a short operational notice, used for the logs channel.
	NotifyFailure(ctx context.Context, destinationID string, text string) error
}

func NewTodayPayload(entries []*birthday.Birthday) TodayPayload {
	p := TodayPayload{Entries: make([]TodayEntry, 0, len(entries))}
	for _, b := range entries {
		p.Entries = append(p.Entries, TodayEntry{Name: b.DisplayName, SubjectRef: b.ExternalID})
	}
	return p
}

func NewMonthlyPayload(month int, entries []*birthday.Birthday) MonthlyPayload {
	p := MonthlyPayload{
		MonthLabel: time.Month(month).String(),
		Entries:    make([]MonthlyEntry, 0, len(entries)),
	}
	for _, b := range entries {
		p.Entries = append(p.Entries, MonthlyEntry{Name: b.DisplayName, Month: b.Month, Day: b.Day})
	}
	return p
}
