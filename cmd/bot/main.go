package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"birthday_notification_bot/internal/app"
	"birthday_notification_bot/internal/infra/config"
	idb "birthday_notification_bot/internal/infra/database"
	"birthday_notification_bot/internal/infra/logger"
	"birthday_notification_bot/internal/infra/scheduler"
	"birthday_notification_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Birthday Notification Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Could not load application configuration: %v", err)
	}
	if err := cfg.RequireTelegramToken(); err != nil {
		logger.Log.Fatalf("Invalid configuration: %v", err)
	}
	logger.Init(cfg)
	mainLogger := logger.Component("main")

	mainLogger.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"driver":      cfg.DatabaseDriver,
		"time_zone":   cfg.TimeZone,
		"hour":        cfg.NotificationHour,
	}).Info("Configuration loaded")

	db, err := idb.NewConnection(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()
	mainLogger.Info("Database connection established and migrated.")

	storeLogger := logger.Component("store")
	birthdayRepo := idb.NewSQLBirthdayRepository(db, storeLogger)
	channelRepo := idb.NewSQLChannelRepository(db, storeLogger)
	adminRepo := idb.NewSQLAdminRepository(db, storeLogger)
	runRepo := idb.NewSQLRunRepository(db, storeLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	adminService := app.NewAdminService(adminRepo, birthdayRepo, channelRepo, logger.Component("admin_service"))
	if err := adminService.SeedAdmins(ctx, cfg.AdminTelegramIDs); err != nil {
		mainLogger.WithError(err).Fatal("Could not seed configured admins")
	}
	birthdayService := app.NewBirthdayService(birthdayRepo, cfg.Location, cfg.NextCount)

	ready := make(chan struct{})
	botLogger := logger.Component("telegram")
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			entry := botLogger.WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithFields(logrus.Fields{
					"text":      c.Text(),
					"sender_id": c.Sender().ID,
					"chat_id":   c.Chat().ID,
				})
			}
			entry.Error("Telebot handler error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	notifier := telegram.NewNotifier(telegram.NewTelebotAdapter(bot), logger.Component("notifier"))
	notificationService := app.NewNotificationServiceImpl(
		birthdayRepo,
		channelRepo,
		runRepo,
		notifier,
		cfg.Location,
		cfg.RoundupDayOfMonth,
		logger.Component("notification_service"),
	)

	notifScheduler, err := scheduler.NewNotificationScheduler(
		notificationService,
		cfg.Location,
		cfg.NotificationHour,
		cfg.CycleTimeout,
		logger.Component("scheduler"),
	)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create scheduler")
	}

	telegram.RegisterAdminHandlers(ctx, bot, adminService, botLogger)
	telegram.RegisterBotCommands(ctx, bot, birthdayService, adminService, botLogger)
	mainLogger.Info("Command handlers registered.")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		mainLogger.Info("Starting Telegram poller...")
		err := runPoller(gCtx, bot, ready)
		mainLogger.Info("Telegram poller stopped.")
		return err
	})

	g.Go(func() error {
		if err := notifScheduler.Start(gCtx, ready); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		<-gCtx.Done()
		notifScheduler.Stop()
		return nil
	})

	mainLogger.Info("Application running. Waiting for shutdown signal...")
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Application stopped due to error")
		os.Exit(1)
	}
	mainLogger.Info("Application shut down gracefully.")
}
