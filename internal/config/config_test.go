package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/DanielPopoola/pagseguro-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PAGSEGURO_ENVIRONMENT",
		"PAGSEGURO_HOST",
		"PAGSEGURO_CREDENTIALS__EMAIL",
		"PAGSEGURO_CREDENTIALS__TOKEN",
		"PAGSEGURO_CREDENTIALS__APP_ID",
		"PAGSEGURO_CREDENTIALS__APP_KEY",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PAGSEGURO_CREDENTIALS__EMAIL", "seller@example.com")
		t.Setenv("PAGSEGURO_CREDENTIALS__TOKEN", "tok")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, config.EnvSandbox, cfg.Environment)
		assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
		assert.Equal(t, int32(1), cfg.Retry.MaxRetries)
		assert.Equal(t, config.SandboxHost, cfg.BaseURL())
		assert.Equal(t, map[string]string{"email": "seller@example.com", "token": "tok"}, cfg.Credentials.Query())
	})

	t.Run("reads nested keys from the environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PAGSEGURO_ENVIRONMENT", "production")
		t.Setenv("PAGSEGURO_CREDENTIALS__APP_ID", "app-1")
		t.Setenv("PAGSEGURO_CREDENTIALS__APP_KEY", "key-1")
		t.Setenv("PAGSEGURO_HTTP__TIMEOUT", "5s")
		t.Setenv("PAGSEGURO_RETRY__MAX_RETRIES", "3")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, config.ProductionHost, cfg.BaseURL())
		assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
		assert.Equal(t, int32(3), cfg.Retry.MaxRetries)
		assert.Equal(t, map[string]string{"appId": "app-1", "appKey": "key-1"}, cfg.Credentials.Query())
	})

	t.Run("rejects unknown environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PAGSEGURO_ENVIRONMENT", "staging")
		t.Setenv("PAGSEGURO_CREDENTIALS__EMAIL", "seller@example.com")
		t.Setenv("PAGSEGURO_CREDENTIALS__TOKEN", "tok")

		_, err := config.LoadConfig()

		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			Environment: config.EnvSandbox,
			HTTP:        config.HTTPConfig{Timeout: time.Second},
			Retry:       config.RetryConfig{MaxRetries: 1},
		}
	}

	t.Run("requires credentials", func(t *testing.T) {
		err := base().Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credentials")
	})

	t.Run("rejects half a credential pair", func(t *testing.T) {
		cfg := base()
		cfg.Credentials.Email = "seller@example.com"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "together")
	})

	t.Run("rejects both credential kinds", func(t *testing.T) {
		cfg := base()
		cfg.Credentials = config.CredentialsConfig{Email: "a@b.com", Token: "t", AppID: "id", AppKey: "k"}

		assert.Error(t, cfg.Validate())
	})

	t.Run("host override wins", func(t *testing.T) {
		cfg := base()
		cfg.Credentials = config.CredentialsConfig{Email: "a@b.com", Token: "t"}
		cfg.Host = "http://localhost:8080/"

		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
	})
}
