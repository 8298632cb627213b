package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "DATABASE_URL", "DEFAULT_SESSION_MINUTES",
		"REPORT_TIME", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "personal_pomo.db", cfg.DatabaseURL)
	assert.Equal(t, 25, cfg.SessionMinutes)
	assert.Equal(t, "21:00", cfg.ReportTime)
	assert.False(t, cfg.ReportEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DATABASE_URL", "/tmp/pomo.db")
	t.Setenv("DEFAULT_SESSION_MINUTES", "50")
	t.Setenv("REPORT_TIME", "08:30")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "/tmp/pomo.db", cfg.DatabaseURL)
	assert.Equal(t, 50, cfg.SessionMinutes)
	assert.Equal(t, "08:30", cfg.ReportTime)
	assert.EqualValues(t, 42, cfg.TelegramChatID)
	assert.True(t, cfg.ReportEnabled())
}

func TestLoadInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEFAULT_SESSION_MINUTES", "-3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.SessionMinutes)

	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	_, err = Load()
	assert.Error(t, err)
}

func TestTokenWithoutChatID(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	_, err := Load()
	assert.Error(t, err)
}
