package app

import (
	"context"
	"errors"
	"io"
	"sync"

	"birthday_notification_bot/internal/domain/admin"
	"birthday_notification_bot/internal/domain/birthday"
	"birthday_notification_bot/internal/domain/channel"
	"birthday_notification_bot/internal/domain/notification"

	"github.com/sirupsen/logrus"
)

var errBoom = errors.New("boom")

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type memBirthdays struct {
	mu      sync.Mutex
	entries []*birthday.Birthday
	listErr error
}

func (m *memBirthdays) Upsert(_ context.Context, b *birthday.Birthday) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.ExternalID == b.ExternalID {
			return nil
		}
	}
	cp := *b
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memBirthdays) Delete(_ context.Context, externalID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.ExternalID != externalID {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

func (m *memBirthdays) List(_ context.Context) ([]*birthday.Birthday, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*birthday.Birthday, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

type memChannels struct {
	bindings map[channel.Key]string
	getErr   error
}

func newMemChannels() *memChannels {
	return &memChannels{bindings: make(map[channel.Key]string)}
}

func (m *memChannels) Get(_ context.Context, key channel.Key) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	dest, ok := m.bindings[key]
	return dest, ok, nil
}

func (m *memChannels) Set(_ context.Context, key channel.Key, destinationID string) error {
	m.bindings[key] = destinationID
	return nil
}

type memAdmins struct {
	ids map[string]bool
}

func newMemAdmins(ids ...string) *memAdmins {
	m := &memAdmins{ids: make(map[string]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func (m *memAdmins) GetAdmins(_ context.Context, id string) ([]*admin.Admin, error) {
	if m.ids[id] {
		return []*admin.Admin{{ExternalUserID: id}}, nil
	}
	return nil, nil
}

func (m *memAdmins) Add(_ context.Context, id string) error {
	m.ids[id] = true
	return nil
}

func (m *memAdmins) Remove(_ context.Context, id string) error {
	delete(m.ids, id)
	return nil
}

type memRuns struct {
	runs   map[string]*notification.Run
	hasErr error
}

func newMemRuns() *memRuns {
	return &memRuns{runs: make(map[string]*notification.Run)}
}

func (m *memRuns) HasRun(_ context.Context, runDate string) (bool, error) {
	if m.hasErr != nil {
		return false, m.hasErr
	}
	_, ok := m.runs[runDate]
	return ok, nil
}

func (m *memRuns) MarkRun(_ context.Context, run *notification.Run) error {
	if _, ok := m.runs[run.RunDate]; !ok {
		m.runs[run.RunDate] = run
	}
	return nil
}

type sentToday struct {
	dest    string
	payload notification.TodayPayload
}

type sentMonthly struct {
	dest    string
	payload notification.MonthlyPayload
}

type sentFailure struct {
	dest string
	text string
}

type recordingNotifier struct {
	today      []sentToday
	monthly    []sentMonthly
	failures   []sentFailure
	todayErr   error
	monthlyErr error
}

func (n *recordingNotifier) NotifyToday(_ context.Context, dest string, p notification.TodayPayload) error {
	if n.todayErr != nil {
		return n.todayErr
	}
	n.today = append(n.today, sentToday{dest: dest, payload: p})
	return nil
}

func (n *recordingNotifier) NotifyMonthly(_ context.Context, dest string, p notification.MonthlyPayload) error {
	if n.monthlyErr != nil {
		return n.monthlyErr
	}
	n.monthly = append(n.monthly, sentMonthly{dest: dest, payload: p})
	return nil
}

func (n *recordingNotifier) NotifyFailure(_ context.Context, dest string, text string) error {
	n.failures = append(n.failures, sentFailure{dest: dest, text: text})
	return nil
}
