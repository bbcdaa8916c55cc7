package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStandaloneConfig(t *testing.T) {
	cfg := DefaultStandaloneConfig()

	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, 1000, cfg.CacheMaxItems)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, "http://localhost:9000", cfg.AnnotationBaseURL)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadStandaloneConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg := LoadStandaloneConfig()

	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, 1000, cfg.CacheMaxItems)
	assert.Equal(t, "http://localhost:9000", cfg.AnnotationBaseURL)
}

func TestLoadStandaloneConfig_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	os.Setenv("TRAPI_SUMMARIZER_DATA_DIR", "/tmp/test-trapi-summarizer")
	os.Setenv("TRAPI_SUMMARIZER_CACHE_MAX_ITEMS", "500")
	os.Setenv("TRAPI_SUMMARIZER_CACHE_TTL", "12h")
	os.Setenv("TRAPI_SUMMARIZER_ANNOTATION_BASE_URL", "https://annotate.example.org")
	os.Setenv("TRAPI_SUMMARIZER_HTTP_PORT", "9090")
	os.Setenv("TRAPI_SUMMARIZER_LOG_LEVEL", "debug")

	defer clearEnvVars(t)

	cfg := LoadStandaloneConfig()

	assert.Equal(t, "/tmp/test-trapi-summarizer", cfg.DataDir)
	assert.Equal(t, 500, cfg.CacheMaxItems)
	assert.Equal(t, 12*time.Hour, cfg.CacheTTL)
	assert.Equal(t, "https://annotate.example.org", cfg.AnnotationBaseURL)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestStandaloneConfig_LookupDBPath(t *testing.T) {
	cfg := &StandaloneConfig{DataDir: "/home/user/.trapi-summarizer"}

	path := cfg.LookupDBPath()

	assert.Equal(t, "/home/user/.trapi-summarizer/lookup.db", path)
}

func TestStandaloneConfig_ExportDir(t *testing.T) {
	cfg := &StandaloneConfig{DataDir: "/home/user/.trapi-summarizer"}

	path := cfg.ExportDir()

	assert.Equal(t, "/home/user/.trapi-summarizer/exports", path)
}

func TestStandaloneConfig_EnsureDataDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	cfg := &StandaloneConfig{DataDir: filepath.Join(tmpDir, "trapi-summarizer")}

	err = cfg.EnsureDataDir()
	require.NoError(t, err)

	_, err = os.Stat(cfg.DataDir)
	assert.NoError(t, err)

	_, err = os.Stat(cfg.ExportDir())
	assert.NoError(t, err)
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	vars := []string{
		"TRAPI_SUMMARIZER_DATA_DIR",
		"TRAPI_SUMMARIZER_CACHE_MAX_ITEMS",
		"TRAPI_SUMMARIZER_CACHE_TTL",
		"TRAPI_SUMMARIZER_ANNOTATION_BASE_URL",
		"TRAPI_SUMMARIZER_HTTP_PORT",
		"TRAPI_SUMMARIZER_LOG_LEVEL",
		"TRAPI_SUMMARIZER_LOG_FORMAT",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
