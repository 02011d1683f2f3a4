package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllVariables(t *testing.T) {
	t.Setenv("ADAPTER_BASE_URL", "https://env.example.org")
	t.Setenv("ADAPTER_API_PATH", "/env/api")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")
	t.Setenv("STORAGE_SESSION_BACKEND", "memory")
	t.Setenv("STORAGE_SESSION_DSN", "x.json")
	t.Setenv("LOG_FILE", "env.log")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("CONFIG", "env.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "https://env.example.org", cfg.Adapter.BaseURL)
	assert.Equal(t, "/env/api", cfg.Adapter.APIPath)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "memory", cfg.Storage.Session.Backend)
	assert.Equal(t, "x.json", cfg.Storage.Session.DSN)
	assert.Equal(t, "env.log", cfg.Log.File)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "env.json", cfg.JSONFilePath)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	var cfg StructuredConfig
	err := parseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
