package config

import (
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerOverrides verifies that a non-zero field of a later
// layer wins while zero fields keep the earlier value.
func TestBuild_LaterLayerOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://a", APIPath: "/api/v1"}},
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://b"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://b", cfg.Adapter.BaseURL)
	assert.Equal(t, "/api/v1", cfg.Adapter.APIPath)
}

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultAPIPath, cfg.Adapter.APIPath)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSessionBackend, cfg.Storage.Session.Backend)
	assert.Equal(t, DefaultSessionDSN, cfg.Storage.Session.DSN)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestWithJSON_FlagsOverrideJSON checks that the JSON layer sits below env and
// flags even though it is loaded last.
func TestWithJSON_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"base_url": "https://json.example.org",
			"api_path": "/json/api",
		},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", path, "-a", "https://flag.example.org"}).
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.org", cfg.Adapter.BaseURL)
	assert.Equal(t, "/json/api", cfg.Adapter.APIPath)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestGetStructuredConfig_PriorityOrder(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"request_timeout": "20s", "api_path": "/from/json"},
		"log":     map[string]any{"level": "warn"},
	})
	t.Setenv("CONFIG", path)
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "30s")

	cfg, rest, err := GetStructuredConfig([]string{"-log-level", "debug", "whoami"})
	require.NoError(t, err)

	// env перекрывает JSON, флаги перекрывают всё
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/from/json", cfg.Adapter.APIPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, []string{"whoami"}, rest)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig([]string{"info"})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, "file", cfg.Storage.Session.Backend)
	assert.Equal(t, []string{"info"}, cfg.Args)
}

func TestGetClientConfig_InvalidFlag(t *testing.T) {
	_, err := GetClientConfig([]string{"-a", "ftp://nope"})
	require.Error(t, err)
}

func TestGetClientConfig_InvalidBackend(t *testing.T) {
	_, err := GetClientConfig([]string{"-session-backend", "redis"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
