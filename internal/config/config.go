// Package config loads process configuration from the environment.
//
// All settings use the PEREKAZ_ prefix (PEREKAZ_API_KEY, PEREKAZ_MODEL,
// ...). Configuration is loaded once at startup, validated fail-fast,
// and treated as read-only for the process lifetime.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/perekaz/internal/apperr"
	"github.com/valpere/perekaz/internal/provider"
)

const envPrefix = "PEREKAZ"

type Config struct {
	APIKey      string        `mapstructure:"api_key"`
	Provider    string        `mapstructure:"provider"`
	Model       string        `mapstructure:"model"`
	BaseURL     string        `mapstructure:"base_url"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Environment string        `mapstructure:"environment"`
	LogLevel    string        `mapstructure:"log_level"`
}

// Load reads configuration from the environment. Callers apply any
// command-line overrides and then call Validate, which fails fast with
// a single ValidationError enumerating every violated constraint.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Every key needs a registered default for AutomaticEnv values to
	// survive Unmarshal.
	v.SetDefault("api_key", "")
	v.SetDefault("provider", "openai")
	v.SetDefault("model", "")
	v.SetDefault("base_url", "")
	v.SetDefault("max_tokens", 0)
	v.SetDefault("temperature", 0.0)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "failed to parse configuration", err)
	}

	return &cfg, nil
}

// Validate checks every constraint and reports all violations at once.
func (c *Config) Validate() error {
	var violations []string

	switch c.Provider {
	case "openai":
		if c.APIKey == "" {
			violations = append(violations, fmt.Sprintf("%s_API_KEY is required", envPrefix))
		}
	case "ollama":
		// Self-hosted, no credential needed.
	default:
		violations = append(violations, fmt.Sprintf("unknown provider %q (expected openai or ollama)", c.Provider))
	}

	if c.MaxTokens < 0 {
		violations = append(violations, fmt.Sprintf("max_tokens must not be negative, got %d", c.MaxTokens))
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		violations = append(violations, fmt.Sprintf("temperature must be between 0 and 2, got %g", c.Temperature))
	}
	if c.Timeout <= 0 {
		violations = append(violations, fmt.Sprintf("timeout must be positive, got %s", c.Timeout))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		violations = append(violations, fmt.Sprintf("unknown log level %q (expected debug, info, warn or error)", c.LogLevel))
	}

	if len(violations) > 0 {
		return apperr.Validation("invalid configuration: " + strings.Join(violations, "; "))
	}
	return nil
}

// ProviderConfig projects the process configuration onto the per-call
// service config.
func (c *Config) ProviderConfig() provider.Config {
	return provider.Config{
		APIKey:      c.APIKey,
		Model:       c.Model,
		BaseURL:     c.BaseURL,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		Timeout:     c.Timeout,
	}
}

// SlogLevel maps the configured log level to a slog level. Validate has
// already rejected anything unknown.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
