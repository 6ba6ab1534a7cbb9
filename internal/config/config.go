package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const (
	EnvSandbox    = "sandbox"
	EnvProduction = "production"

	SandboxHost    = "https://ws.sandbox.pagseguro.uol.com.br"
	ProductionHost = "https://ws.pagseguro.uol.com.br"
)

type Config struct {
	Environment string            `koanf:"environment" validate:"required,oneof=sandbox production"`
	Host        string            `koanf:"host" validate:"omitempty,url"`
	Credentials CredentialsConfig `koanf:"credentials"`
	HTTP        HTTPConfig        `koanf:"http"`
	Retry       RetryConfig       `koanf:"retry"`
	Logger      LoggerConfig      `koanf:"logger"`
	Telemetry   TelemetryConfig   `koanf:"telemetry"`
}

// CredentialsConfig holds either seller credentials (email + token) or
// application credentials (app_id + app_key).
type CredentialsConfig struct {
	Email  string `koanf:"email" validate:"omitempty,email"`
	Token  string `koanf:"token"`
	AppID  string `koanf:"app_id"`
	AppKey string `koanf:"app_key"`
}

type HTTPConfig struct {
	Timeout   time.Duration `koanf:"timeout" validate:"required"`
	UserAgent string        `koanf:"user_agent"`
}

// RetryConfig drives the optional retrying transport. MaxRetries counts
// attempts, so 1 means a single try.
type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int32         `koanf:"max_retries" validate:"min=1,max=10"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

type TelemetryConfig struct {
	Enabled        bool   `koanf:"enabled"`
	Endpoint       string `koanf:"endpoint"`
	Insecure       bool   `koanf:"insecure"`
	ServiceName    string `koanf:"service_name"`
	ServiceVersion string `koanf:"service_version"`
}

var defaults = map[string]interface{}{
	"environment":               EnvSandbox,
	"http.timeout":              "30s",
	"http.user_agent":           "pagseguro-go",
	"retry.base_delay":          "500ms",
	"retry.max_retries":         1,
	"logger.level":              "info",
	"logger.format":             "text",
	"telemetry.endpoint":        "localhost:4318",
	"telemetry.service_name":    "pagseguro-client",
	"telemetry.service_version": "dev",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("PAGSEGURO_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "PAGSEGURO_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return err
	}

	return c.Credentials.validate()
}

func (c CredentialsConfig) validate() error {
	seller := c.Email != "" || c.Token != ""
	app := c.AppID != "" || c.AppKey != ""

	switch {
	case seller && app:
		return errors.New("credentials: set either email/token or app_id/app_key, not both")
	case seller && (c.Email == "" || c.Token == ""):
		return errors.New("credentials: email and token must be set together")
	case app && (c.AppID == "" || c.AppKey == ""):
		return errors.New("credentials: app_id and app_key must be set together")
	case !seller && !app:
		return errors.New("credentials: email/token or app_id/app_key are required")
	}
	return nil
}

// BaseURL resolves the service host: an explicit host wins over the
// environment.
func (c *Config) BaseURL() string {
	if c.Host != "" {
		return strings.TrimRight(c.Host, "/")
	}
	if c.Environment == EnvProduction {
		return ProductionHost
	}
	return SandboxHost
}

// Query returns the credential query parameters appended to every call.
func (c CredentialsConfig) Query() map[string]string {
	if c.AppID != "" {
		return map[string]string{"appId": c.AppID, "appKey": c.AppKey}
	}
	return map[string]string{"email": c.Email, "token": c.Token}
}

func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch c.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func (c *Config) String() string {
	return fmt.Sprintf("environment=%s base_url=%s timeout=%s max_retries=%d",
		c.Environment, c.BaseURL(), c.HTTP.Timeout, c.Retry.MaxRetries)
}
