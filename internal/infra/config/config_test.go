package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TELEGRAM_TOKEN", "DATABASE_DRIVER", "DATABASE_URL", "ADMIN_TELEGRAM_IDS",
		"LOG_LEVEL", "ENVIRONMENT", "TIME_ZONE", "BIRTHDAY_NOTIF_HOUR",
		"BIRTHDAY_ROUNDUP_DAY", "BIRTHDAY_NEXT_COUNT", "CYCLE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DatabaseDriver != DriverSQLite || cfg.DatabaseURL != "birthdays.db" {
		t.Errorf("database = %s %s", cfg.DatabaseDriver, cfg.DatabaseURL)
	}
	if cfg.NotificationHour != 9 || cfg.RoundupDayOfMonth != 1 || cfg.NextCount != 3 {
		t.Errorf("schedule = hour %d, roundup %d, next %d", cfg.NotificationHour, cfg.RoundupDayOfMonth, cfg.NextCount)
	}
	if cfg.CycleTimeout != 2*time.Minute {
		t.Errorf("CycleTimeout = %v", cfg.CycleTimeout)
	}
	if cfg.Location != time.UTC {
		t.Errorf("Location = %v, want UTC", cfg.Location)
	}
	if err := cfg.RequireTelegramToken(); err == nil {
		t.Error("RequireTelegramToken() = nil without a token")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/birthdays")
	t.Setenv("ADMIN_TELEGRAM_IDS", " 100, 200 ,")
	t.Setenv("TIME_ZONE", "America/New_York")
	t.Setenv("BIRTHDAY_NOTIF_HOUR", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DatabaseDriver != DriverPostgres {
		t.Errorf("DatabaseDriver = %q", cfg.DatabaseDriver)
	}
	if len(cfg.AdminTelegramIDs) != 2 || cfg.AdminTelegramIDs[0] != "100" || cfg.AdminTelegramIDs[1] != "200" {
		t.Errorf("AdminTelegramIDs = %v", cfg.AdminTelegramIDs)
	}
	if cfg.Location.String() != "America/New_York" || cfg.NotificationHour != 7 {
		t.Errorf("Location = %v, hour = %d", cfg.Location, cfg.NotificationHour)
	}
	if err := cfg.RequireTelegramToken(); err != nil {
		t.Errorf("RequireTelegramToken() = %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"BIRTHDAY_NOTIF_HOUR":  "24",
		"BIRTHDAY_ROUNDUP_DAY": "31",
		"BIRTHDAY_NEXT_COUNT":  "zero",
		"DATABASE_DRIVER":      "mysql",
		"TIME_ZONE":            "Mars/Olympus_Mons",
		"CYCLE_TIMEOUT":        "soon",
		"ADMIN_TELEGRAM_IDS":   "alice",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q succeeded", key, value)
			}
		})
	}
}
