package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the service.
type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	SessionMinutes int
	ReportTime     string // HH:MM local time for the daily Telegram report
	TelegramToken  string
	TelegramChatID int64
}

// Load reads configuration from the environment (a local .env file is
// honored when present) with sane defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:       strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SessionMinutes: parsePositiveInt(strings.TrimSpace(os.Getenv("DEFAULT_SESSION_MINUTES"))),
		ReportTime:     strings.TrimSpace(os.Getenv("REPORT_TIME")),
		TelegramToken:  strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "personal_pomo.db"
	}
	if cfg.SessionMinutes == 0 {
		cfg.SessionMinutes = 25
	}
	if cfg.ReportTime == "" {
		cfg.ReportTime = "21:00"
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
		cfg.TelegramChatID = chatID
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return cfg, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}

// ReportEnabled reports whether the daily Telegram summary should run.
func (c Config) ReportEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func parsePositiveInt(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
