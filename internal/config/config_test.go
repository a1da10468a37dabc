package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"EVENTRIDE_HTTP_ADDR", "EVENTRIDE_SHUTDOWN_SECONDS", "EVENTRIDE_DB_DSN",
	"EVENTRIDE_REDIS_ADDR", "EVENTRIDE_MAPS_API_KEY", "EVENTRIDE_PRICING_TZ",
	"EVENTRIDE_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Empty(t, cfg.DB.DSN)
	assert.Empty(t, cfg.Redis.Addr, "saved places stay off unless Redis is configured")
	assert.Empty(t, cfg.Maps.APIKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "America/New_York", cfg.Pricing.Location.String())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVENTRIDE_HTTP_ADDR", ":9090")
	t.Setenv("EVENTRIDE_SHUTDOWN_SECONDS", "3")
	t.Setenv("EVENTRIDE_DB_DSN", "postgres://localhost/eventride")
	t.Setenv("EVENTRIDE_PRICING_TZ", "UTC")
	t.Setenv("EVENTRIDE_REDIS_ADDR", "redis:6379")
	t.Setenv("EVENTRIDE_LOG_LEVEL", "debug")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "postgres://localhost/eventride", cfg.DB.DSN)
	assert.Equal(t, time.UTC, cfg.Pricing.Location)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestFromEnv_BadNumberFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVENTRIDE_SHUTDOWN_SECONDS", "soon")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestFromEnv_BadTimeZone(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVENTRIDE_PRICING_TZ", "Mars/Olympus_Mons")

	_, err := fromEnv()
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("EVENTRIDE_MAPS_API_KEY")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EVENTRIDE_MAPS_API_KEY=from-file\n"), 0o600))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Maps.APIKey)
}

func TestLoad_NoDotEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	_, err := Load()
	assert.NoError(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
