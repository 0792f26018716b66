package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"base_url":        "http://json.example/api",
		"page_size":       7,
		"request_timeout": "15s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://json.example/api", cfg.BaseURL)
		assert.Equal(t, 7, cfg.PageSize)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	})

	t.Run("absent fields keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"page_size": 3})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, 3, cfg.PageSize)
		assert.Equal(t, "https://blog-platform.kata.academy/api", cfg.BaseURL)
	})

	t.Run("no config flag means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{BaseURL: "keep", PageSize: 42}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.BaseURL)
		assert.Equal(t, 42, cfg.PageSize)
	})
}

func Test_parseEnv_OverlaysValues(t *testing.T) {
	t.Setenv("BLOGCTL_BASE_URL", "http://env.example/api")
	t.Setenv("BLOGCTL_PAGE_SIZE", "9")
	t.Setenv("BLOGCTL_REQUEST_TIMEOUT", "30s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env.example/api", cfg.BaseURL)
	assert.Equal(t, 9, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "blogctl.db", cfg.DatabasePath)
}
