package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JUSPAY_USERNAME", "merchant")
	t.Setenv("JUSPAY_PASSWORD", "s3cret")
	t.Setenv("PLATFORM_API_URL", "https://platform.example/graphql/")
	t.Setenv("PLATFORM_APP_TOKEN", "app-token")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ledger-bridge", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "https://api.juspay.in", cfg.Juspay.APIURL)
	assert.Equal(t, "https://sandbox.hyperswitch.io", cfg.Hyperswitch.APIURL)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxConns)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("WEBHOOK_AUDIT_ENABLED", "true")
	t.Setenv("PG_PORT", "6543")
	t.Setenv("PLATFORM_CHANNEL_ID", "channel-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "channel-1", cfg.Platform.ChannelID)
}

func TestLoad_MissingJuspayCredentials(t *testing.T) {
	t.Setenv("JUSPAY_USERNAME", "")
	t.Setenv("JUSPAY_PASSWORD", "")
	t.Setenv("PLATFORM_API_URL", "https://platform.example/graphql/")
	t.Setenv("PLATFORM_APP_TOKEN", "app-token")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingPlatformContext(t *testing.T) {
	t.Setenv("JUSPAY_USERNAME", "merchant")
	t.Setenv("JUSPAY_PASSWORD", "s3cret")
	t.Setenv("PLATFORM_API_URL", "")
	t.Setenv("PLATFORM_APP_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))

	t.Setenv("SOME_BOOL", "definitely")
	assert.False(t, getEnvBool("SOME_BOOL", false))

	t.Setenv("SOME_STRING", "")
	assert.Equal(t, "fallback", getEnv("SOME_STRING", "fallback"))
}
