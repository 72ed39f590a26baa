package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_ADDR", "CONTENT_DIR", "DEFAULT_LANG", "REDUCED_MOTION", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "fr", cfg.DefaultLang)
	assert.False(t, cfg.ReducedMotion)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("REDUCED_MOTION", "true")
	t.Setenv("DEFAULT_LANG", "en")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.True(t, cfg.ReducedMotion)
	assert.Equal(t, "en", cfg.DefaultLang)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("REDUCED_MOTION", "sometimes")
	_, err := Parse()
	require.Error(t, err)

	t.Setenv("REDUCED_MOTION", "false")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = Parse()
	require.Error(t, err)
}

func TestLoadContentEmbedded(t *testing.T) {
	cfg := &Config{}
	store, err := cfg.LoadContent()
	require.NoError(t, err)
	assert.Equal(t, 9, store.Len())
}

func TestLoadContentFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.yaml"), []byte("projects:\n  - title: Local\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.yaml"), []byte("name: Local\n"), 0o644))

	cfg := &Config{ContentDir: dir}
	store, err := cfg.LoadContent()
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	cfg.ContentDir = filepath.Join(dir, "missing")
	_, err = cfg.LoadContent()
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetupLoggingJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogging(slog.LevelInfo, "json", &buf)
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
