package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: unset values fall back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ModeCLI, conf.Mode)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, time.Hour, conf.SessionTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads every field", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: info
mode: http
http-port: "8080"
storage: redis
session-ttl: 30m
redis:
  host: cache
  port: "6380"
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: all values are taken from the file
		assert.Equal(t, ModeHTTP, conf.Mode)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, 30*time.Minute, conf.SessionTTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an env override
		path := writeConfig(t, "mode: cli\n")
		t.Setenv("MODE", "http")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the env value wins
		assert.Equal(t, ModeHTTP, conf.Mode)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		// Given: a config with an unsupported mode
		path := writeConfig(t, "mode: gui\n")

		// When: loading it
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown mode")
	})

	t.Run("Rejects an unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: sqlite\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage")
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
