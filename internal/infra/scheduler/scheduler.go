package scheduler

import (
	"context"
	"fmt"
	"time"

	"birthday_notification_bot/internal/app"
	"birthday_notification_bot/internal/infra/logger"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// NotificationScheduler fires the birthday cycle once per day at the configured hour.
type NotificationScheduler struct {
	cronEngine   *cron.Cron
	schedule     cron.Schedule
	notifService app.NotificationService
	logger       *logrus.Entry
	cycleTimeout time.Duration
	now          func() time.Time

	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewNotificationScheduler builds a scheduler that wakes at minute 0 of hour in location.
func NewNotificationScheduler(
	notifService app.NotificationService,
	location *time.Location,
	hour int,
	cycleTimeout time.Duration,
	log *logrus.Entry,
) (*NotificationScheduler, error) {
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("invalid notification hour %d", hour)
	}

	schedule := dailySchedule{hour: hour, loc: location}

	cronLog := logger.CronLogger(log)
	baseCtx, cancel := context.WithCancel(context.Background())
	return &NotificationScheduler{
		cronEngine: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		schedule:     schedule,
		notifService: notifService,
		logger:       log,
		cycleTimeout: cycleTimeout,
		now:          time.Now,
		baseCtx:      baseCtx,
		cancel:       cancel,
	}, nil
}

// NextWake returns the first aligned wake instant strictly after now.
// It is derived from the calendar each time, so DST shifts never accumulate drift.
func (s *NotificationScheduler) NextWake(now time.Time) time.Time {
	return s.schedule.Next(now)
}

// Start blocks until ready is closed, then starts the daily job. It returns early
// with ctx's error if ctx is cancelled first.
func (s *NotificationScheduler) Start(ctx context.Context, ready <-chan struct{}) error {
	s.logger.Info("Waiting for chat client before scheduling notifications...")
	select {
	case <-ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.cronEngine.Schedule(s.schedule, cron.FuncJob(func() {
		s.fire(s.now())
	}))
	s.cronEngine.Start()

	s.logger.WithField("next_wake", s.NextWake(s.now()).Format(time.RFC3339)).Info("Notification scheduler started")
	return nil
}

// fire runs one cycle. A cancelled scheduler does not start new cycles.
func (s *NotificationScheduler) fire(now time.Time) {
	if s.baseCtx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(s.baseCtx, s.cycleTimeout)
	defer cancel()

	log := s.logger.WithField("fired_at", now.Format(time.RFC3339))
	log.Info("Birthday cycle triggered")

	result, err := s.notifService.RunCycle(ctx, now)
	if err != nil {
		log.WithError(err).Error("Birthday cycle failed")
		s.notifService.ReportFailure(ctx, err)
		return
	}
	log.WithFields(logrus.Fields{
		"run_id": result.RunID,
		"status": result.Status,
		"month":  result.Month,
		"day":    result.Day,
	}).Info("Birthday cycle finished")
}

// Stop prevents further cycles and waits for an in-flight cycle to finish.
func (s *NotificationScheduler) Stop() {
	s.logger.Info("Stopping notification scheduler...")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.cancel()
	s.logger.Info("Notification scheduler gracefully stopped.")
}
