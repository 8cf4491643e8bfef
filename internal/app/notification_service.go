// internal/app/notification_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"birthday_notification_bot/internal/domain/birthday"
	"birthday_notification_bot/internal/domain/channel"
	"birthday_notification_bot/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CycleResult is the outcome of one firing cycle.
type CycleResult struct {
	RunID         string
	Status        notification.CycleStatus
	DestinationID string
	Month         int
	Day           int
	Monthly       *notification.MonthlyPayload // nil unless a roundup was sent
	Today         *notification.TodayPayload   // nil unless someone celebrates today
}

// NotificationService runs the daily firing cycle.
type NotificationService interface {
	// RunCycle reads fresh state, builds the payloads for now's calendar day and hands them to the Notifier.
	RunCycle(ctx context.Context, now time.Time) (*CycleResult, error)
	// ReportFailure posts a notice about a failed cycle to the logs channel, if one is bound.
	ReportFailure(ctx context.Context, runErr error)
}

type NotificationServiceImpl struct {
	birthdayRepo birthday.Repository
	channelRepo  channel.Repository
	runRepo      notification.RunRepository
	notifier     notification.Notifier
	location     *time.Location
	roundupDay   int
	logger       *logrus.Entry
	newRunID     func() string
}

var _ NotificationService = (*NotificationServiceImpl)(nil)

func NewNotificationServiceImpl(
	br birthday.Repository,
	cr channel.Repository,
	rr notification.RunRepository,
	notifier notification.Notifier,
	location *time.Location,
	roundupDay int, // day of month that triggers the monthly roundup, normally 1
	logger *logrus.Entry,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		birthdayRepo: br,
		channelRepo:  cr,
		runRepo:      rr,
		notifier:     notifier,
		location:     location,
		roundupDay:   roundupDay,
		logger:       logger,
		newRunID:     uuid.NewString,
	}
}

func (s *NotificationServiceImpl) RunCycle(ctx context.Context, now time.Time) (*CycleResult, error) {
	local := now.In(s.location)
	result := &CycleResult{
		RunID: s.newRunID(),
		Month: int(local.Month()),
		Day:   local.Day(),
	}
	runDate := local.Format(notification.RunDateLayout)
	log := s.logger.WithFields(logrus.Fields{"run_id": result.RunID, "run_date": runDate})

	destinationID, ok, err := s.channelRepo.Get(ctx, channel.KeyBirthday)
	if err != nil {
		return result, fmt.Errorf("failed to resolve %s: %w", channel.KeyBirthday, err)
	}
	if !ok {
		log.Info("Birthday channel is not configured yet. Skipping cycle.")
		result.Status = notification.CycleNotConfigured
		return result, nil
	}
	result.DestinationID = destinationID

	done, err := s.runRepo.HasRun(ctx, runDate)
	if err != nil {
		// Delivery is at-least-once; an unreadable ledger must not suppress the cycle.
		log.WithError(err).Warn("Could not read run ledger. Continuing with cycle.")
	} else if done {
		log.Info("Cycle for this date already delivered. Skipping.")
		result.Status = notification.CycleAlreadyRun
		return result, nil
	}

	entries, err := s.birthdayRepo.List(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list birthdays: %w", err)
	}

	var deliveryErrs []error

	if result.Day == s.roundupDay {
		if matches := birthday.MonthMatches(entries, result.Month); len(matches) > 0 {
			payload := notification.NewMonthlyPayload(result.Month, matches)
			if err := s.notifier.NotifyMonthly(ctx, destinationID, payload); err != nil {
				log.WithError(err).Error("Failed to deliver monthly roundup")
				deliveryErrs = append(deliveryErrs, fmt.Errorf("monthly roundup: %w", err))
			} else {
				log.WithField("count", len(payload.Entries)).Info("Monthly roundup delivered")
			}
			result.Monthly = &payload
		}
	}

	if matches := birthday.TodayMatches(entries, result.Month, result.Day); len(matches) > 0 {
		payload := notification.NewTodayPayload(matches)
		if err := s.notifier.NotifyToday(ctx, destinationID, payload); err != nil {
			log.WithError(err).Error("Failed to deliver today's birthdays")
			deliveryErrs = append(deliveryErrs, fmt.Errorf("today: %w", err))
		} else {
			log.WithField("count", len(payload.Entries)).Info("Today's birthdays delivered")
		}
		result.Today = &payload
	}

	if len(deliveryErrs) > 0 {
		return result, errors.Join(deliveryErrs...)
	}

	result.Status = notification.CycleCompleted
	run := &notification.Run{RunDate: runDate, RunID: result.RunID, FiredAt: now}
	if err := s.runRepo.MarkRun(ctx, run); err != nil {
		log.WithError(err).Warn("Failed to record completed cycle in run ledger")
	}
	return result, nil
}

func (s *NotificationServiceImpl) ReportFailure(ctx context.Context, runErr error) {
	destinationID, ok, err := s.channelRepo.Get(ctx, channel.KeyLogs)
	if err != nil || !ok {
		return
	}
	text := fmt.Sprintf("Birthday notification cycle failed: %v", runErr)
	if err := s.notifier.NotifyFailure(ctx, destinationID, text); err != nil {
		s.logger.WithError(err).Warn("Failed to post failure notice to logs channel")
	}
}
