package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ozkayhan/wat2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset clears a variable for the duration of the test and restores it after.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"HOST", "PORT", "LOG_LEVEL", "CORS_ORIGINS", "STATIC_DIR",
		"READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT",
	} {
		unset(t, config.Prefix+k)
	}
	unset(t, "ENV_FILE")
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.FromEnv()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WAT2_HOST", "127.0.0.1")
	t.Setenv("WAT2_PORT", "3000")
	t.Setenv("WAT2_LOG_LEVEL", "debug")
	t.Setenv("WAT2_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("WAT2_READ_TIMEOUT", "2s")

	cfg, err := config.FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"port not a number", "WAT2_PORT", "http"},
		{"port out of range", "WAT2_PORT", "70000"},
		{"unknown log level", "WAT2_LOG_LEVEL", "verbose"},
		{"zero timeout", "WAT2_IDLE_TIMEOUT", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.FromEnv()

			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	// GIVEN: An env file setting the port, and a process variable setting the level
	// WHEN: Loading config
	// THEN: Both apply, and the file does not override the process

	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("WAT2_PORT=9090\nWAT2_LOG_LEVEL=error\n"), 0o644))
	t.Setenv("ENV_FILE", path)
	t.Setenv("WAT2_LOG_LEVEL", "warn")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "nope.env"))

	_, err := config.Load()

	assert.Error(t, err)
}
