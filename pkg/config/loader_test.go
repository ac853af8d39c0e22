package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlist/castkit/pkg/config"
)

type apiConfig struct {
	BaseURL string        `env:"TEST_CFG_BASE_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `env:"TEST_CFG_TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	Token string `env:"TEST_CFG_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("TEST_CFG_BASE_URL")
		os.Unsetenv("TEST_CFG_TIMEOUT")

		var cfg apiConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_CFG_BASE_URL", "https://api.example.com")
		t.Setenv("TEST_CFG_TIMEOUT", "3s")

		var cfg apiConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
	})

	t.Run("second load returns the cached copy", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_CFG_BASE_URL", "https://first.example.com")

		var first apiConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CFG_BASE_URL", "https://second.example.com")
		var second apiConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "https://first.example.com", second.BaseURL)
	})

	t.Run("missing required variable errors", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("TEST_CFG_REQUIRED_TOKEN")

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil destination", func(t *testing.T) {
		err := config.Load[apiConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("file values reach subsequent loads", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("TEST_CFG_BASE_URL")
		os.Unsetenv("TEST_CFG_TIMEOUT")

		path := filepath.Join(t.TempDir(), ".env.test")
		require.NoError(t, os.WriteFile(path, []byte("TEST_CFG_BASE_URL=https://file.example.com\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("TEST_CFG_BASE_URL")
			config.ResetCache()
		})

		require.NoError(t, config.LoadEnv(path))

		var cfg apiConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://file.example.com", cfg.BaseURL)
	})

	t.Run("missing file errors", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
