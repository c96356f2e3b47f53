package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)
			assert.Equal(t, tc.expected, getEnvOrDefault(tc.key, tc.defaultVal))
		})
	}
}

func TestGetEnvAsFloatOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal float32
		expected   float32
	}{
		{"parses float", "0.25", 0.7, 0.25},
		{"uses default for empty", "", 0.7, 0.7},
		{"uses default for non-numeric", "warm", 0.7, 0.7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_FLOAT", tc.envValue)
			assert.InDelta(t, tc.expected, getEnvAsFloatOrDefault("TEST_FLOAT", tc.defaultVal), 0.0001)
		})
	}
}

func TestGetEnvAsListOrDefault(t *testing.T) {
	t.Setenv("TEST_LIST", " http://a.test , ,http://b.test")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, getEnvAsListOrDefault("TEST_LIST", []string{"*"}))

	t.Setenv("TEST_LIST", " , ")
	assert.Equal(t, []string{"*"}, getEnvAsListOrDefault("TEST_LIST", []string{"*"}))
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "HOST", "PORT", "BACKEND_MODE", "GEMINI_API_KEY", "GEMINI_MODEL", "CORS_ALLOWED_ORIGINS")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, ModeLive, cfg.Mode)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "127.0.0.1:5000", cfg.Addr())
}

// unsetEnv clears keys for the duration of the test; t.Setenv restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	unsetEnv(t, "HOST")
	t.Setenv("PORT", "9000")
	t.Setenv("BACKEND_MODE", "live")

	cfg, err := Load([]string{"--port", "8081", "--mode", "mock", "--host", "0.0.0.0"})
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, ModeMock, cfg.Mode)
	assert.Equal(t, "0.0.0.0:8081", cfg.Addr())
}

func TestLoad_EnvFallback(t *testing.T) {
	unsetEnv(t, "HOST", "BACKEND_MODE")
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_API_KEY", "  secret-key ")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "secret-key", cfg.GeminiAPIKey)
}

func TestLoad_RejectsUnknownMode(t *testing.T) {
	unsetEnv(t, "HOST", "PORT", "BACKEND_MODE")
	_, err := Load([]string{"--mode", "turbo"})
	assert.Error(t, err)
}
