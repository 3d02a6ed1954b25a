package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "cardtimers.db", cfg.Database.Name)
	assert.Equal(t, "America/New_York", cfg.Reset.Timezone)
	assert.Equal(t, 3, cfg.Reset.MorningHour)
	assert.Equal(t, 15, cfg.Reset.EveningHour)
	assert.True(t, cfg.CardLogger.RequireBotAuthor)
	assert.Empty(t, cfg.CardLogger.DiscordToken)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "cardtimers", cfg.Events.Subject)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("RESET_TIMEZONE", "Europe/Helsinki")
	t.Setenv("RESET_MORNING_HOUR", "4")
	t.Setenv("CARDLOGGER_REQUIRE_BOT_AUTHOR", "false")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Europe/Helsinki", cfg.Reset.Timezone)
	assert.Equal(t, 4, cfg.Reset.MorningHour)
	assert.False(t, cfg.CardLogger.RequireBotAuthor)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	// Registered so the value written by the .env loader is restored afterwards.
	t.Setenv("CARDLOGGER_CHANNEL_ID", "")
	t.Setenv("DATABASE_DRIVER", "")

	env := "CARDLOGGER_CHANNEL_ID=123456789\nDATABASE_DRIVER=mysql\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "123456789", cfg.CardLogger.ChannelID)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}
