package app

import (
	"context"
	"fmt"
	"time"

	"birthday_notification_bot/internal/domain/birthday"
)

// BirthdayService answers the read-only query commands.
type BirthdayService struct {
	birthdayRepo birthday.Repository
	location     *time.Location
	nextCount    int
}

func NewBirthdayService(br birthday.Repository, location *time.Location, nextCount int) *BirthdayService {
	if nextCount <= 0 {
		nextCount = birthday.DefaultNextCount
	}
	return &BirthdayService{birthdayRepo: br, location: location, nextCount: nextCount}
}

// List returns every stored birthday ordered by (month, day).
func (s *BirthdayService) List(ctx context.Context) ([]*birthday.Birthday, error) {
	all, err := s.birthdayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays: %w", err)
	}
	return birthday.Sorted(all), nil
}

// Next returns the next count birthdays from now's calendar day in the configured timezone,
// wrapping into January. count <= 0 uses the configured default.
func (s *BirthdayService) Next(ctx context.Context, now time.Time, count int) ([]*birthday.Birthday, error) {
	if count <= 0 {
		count = s.nextCount
	}
	all, err := s.birthdayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays: %w", err)
	}
	local := now.In(s.location)
	return birthday.NextUpcoming(all, int(local.Month()), local.Day(), count), nil
}
