package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/package_pricing/internal/platform/config"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"REDIS_HOST", "REDIS_PORT", "HTTP_ADDR",
		"RULESET_CACHE_TTL", "BOOKING_HOLD_TTL", "CLEANUP_INTERVAL", "LOW_STOCK_THRESHOLD",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "package_pricing", cfg.DB.DBName)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Minute, cfg.RuleSetCacheTTL)
	assert.Equal(t, 10*time.Minute, cfg.BookingHoldTTL)
	assert.Equal(t, time.Minute, cfg.CleanupInterval)
	assert.Equal(t, 3, cfg.LowStockThreshold)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("BOOKING_HOLD_TTL", "90s")
	t.Setenv("LOW_STOCK_THRESHOLD", "5")

	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "localhost:6380", cfg.RedisAddr())
	assert.Equal(t, 90*time.Second, cfg.BookingHoldTTL)
	assert.Equal(t, 5, cfg.LowStockThreshold)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=pricing_test\nHTTP_ADDR=:9090\n"), 0o600))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "pricing_test", cfg.DB.DBName)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"RULESET_CACHE_TTL", "five minutes"},
		{"CLEANUP_INTERVAL", "-1m"},
		{"LOW_STOCK_THRESHOLD", "three"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load("")

			assert.ErrorContains(t, err, tt.key)
		})
	}
}
