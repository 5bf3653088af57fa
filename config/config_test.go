package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "SERVER_PORT", "CORS_ALLOWED_ORIGINS", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT")
	cfg := Load()

	assert.Equal(t, "3902", cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	unsetEnv(t, "WRITE_TIMEOUT")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://example.com ,")
	t.Setenv("SHUTDOWN_TIMEOUT", "12")
	t.Setenv("READ_TIMEOUT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 12*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
}

func TestGetEnvAsListFallsBackOnBlank(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
	assert.Equal(t, []string{"*"}, getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}))
}

func TestEmptyPortIsKept(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	assert.Equal(t, "", Load().ServerPort)
}
