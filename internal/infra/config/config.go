package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // containers often ship without a zoneinfo database

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken     string
	DatabaseDriver    string   `validate:"oneof=sqlite postgres"`
	DatabaseURL       string   `validate:"required"`
	AdminTelegramIDs  []string `validate:"dive,required,numeric"`
	LogLevel          string
	Environment       string
	TimeZone          string        `validate:"required"`
	NotificationHour  int           `validate:"min=0,max=23"`
	RoundupDayOfMonth int           `validate:"min=1,max=28"`
	NextCount         int           `validate:"min=1,max=25"`
	CycleTimeout      time.Duration `validate:"min=1s,max=1h"`

	Location *time.Location `validate:"-"`
}

// Load reads configuration from environment variables and .env file (if present).
// The Telegram token is only required by the bot binary, see RequireTelegramToken.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	cfg.DatabaseDriver = strings.ToLower(getOrDefault("DATABASE_DRIVER", DriverSQLite))
	cfg.DatabaseURL = getOrDefault("DATABASE_URL", "birthdays.db")

	if ids := os.Getenv("ADMIN_TELEGRAM_IDS"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.AdminTelegramIDs = append(cfg.AdminTelegramIDs, id)
			}
		}
	}

	cfg.LogLevel = strings.ToLower(getOrDefault("LOG_LEVEL", "info"))
	cfg.Environment = strings.ToLower(getOrDefault("ENVIRONMENT", "development"))
	cfg.TimeZone = getOrDefault("TIME_ZONE", "UTC")

	if cfg.NotificationHour, err = intOrDefault("BIRTHDAY_NOTIF_HOUR", 9); err != nil {
		return nil, err
	}
	if cfg.RoundupDayOfMonth, err = intOrDefault("BIRTHDAY_ROUNDUP_DAY", 1); err != nil {
		return nil, err
	}
	if cfg.NextCount, err = intOrDefault("BIRTHDAY_NEXT_COUNT", 3); err != nil {
		return nil, err
	}

	cfg.CycleTimeout, err = time.ParseDuration(getOrDefault("CYCLE_TIMEOUT", "2m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CYCLE_TIMEOUT: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.Location, err = time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE %q: %w", cfg.TimeZone, err)
	}

	return cfg, nil
}

// RequireTelegramToken fails when no bot token is configured.
func (c *AppConfig) RequireTelegramToken() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is not set")
	}
	return nil
}

func getOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intOrDefault(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
