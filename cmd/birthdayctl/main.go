package main

import (
	"fmt"
	"os"

	"birthday_notification_bot/internal/app"
	"birthday_notification_bot/internal/infra/config"
	idb "birthday_notification_bot/internal/infra/database"
	"birthday_notification_bot/internal/infra/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var (
	cfg *config.AppConfig
	db  *sqlx.DB

	adminService    *app.AdminService
	birthdayService *app.BirthdayService
)

var rootCmd = &cobra.Command{
	Use:          "birthdayctl <command>",
	Short:        "Operator tool for the birthday notification store",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger.Init(cfg)
		logger.Log.SetOutput(os.Stderr)

		if db, err = idb.NewConnection(cfg.DatabaseDriver, cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		storeLogger := logger.Component("store")
		birthdayRepo := idb.NewSQLBirthdayRepository(db, storeLogger)
		adminService = app.NewAdminService(
			idb.NewSQLAdminRepository(db, storeLogger),
			birthdayRepo,
			idb.NewSQLChannelRepository(db, storeLogger),
			logger.Component("birthdayctl"),
		)
		birthdayService = app.NewBirthdayService(birthdayRepo, cfg.Location, cfg.NextCount)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd, adminCmd, channelCmd, listCmd, nextCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
