/*
Copyright © 2026 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/valpere/perekaz/internal/config"
	"github.com/valpere/perekaz/internal/provider"
)

// Provider override flags shared by the paraphrase and interactive
// commands. Empty values leave the environment configuration untouched.
var (
	providerName string
	modelName    string
	baseURL      string
	maxTokens    int
	temperature  float64
)

// registerProviderFlags attaches the shared override flags to a
// command's flag set. Only one subcommand runs per invocation, so the
// commands can share the backing variables.
func registerProviderFlags(fs *pflag.FlagSet) {
	fs.StringVar(&providerName, "provider", "", "Completion provider: openai or ollama (default from environment)")
	fs.StringVar(&modelName, "model", "", "Model name (default from environment)")
	fs.StringVar(&baseURL, "base-url", "", "API base URL override")
	fs.IntVar(&maxTokens, "max-tokens", 0, "Maximum tokens to generate (0 = provider default)")
	fs.Float64Var(&temperature, "temperature", 0, "Sampling temperature (0 = provider default)")
}

// loadConfig reads the environment, applies CLI overrides, and
// validates the result. Fails fast enumerating every violation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if providerName != "" {
		cfg.Provider = providerName
	}
	if modelName != "" {
		cfg.Model = modelName
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if maxTokens > 0 {
		cfg.MaxTokens = maxTokens
	}
	if temperature > 0 {
		cfg.Temperature = temperature
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(cfg)
	return cfg, nil
}

// buildService constructs the completion service selected by the
// configuration.
func buildService(cfg *config.Config) (provider.CompletionService, error) {
	switch cfg.Provider {
	case "openai":
		return provider.NewOpenAIService(cfg.BaseURL, cfg.Timeout), nil
	case "ollama":
		return provider.NewOllamaService(cfg.BaseURL, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

func setupLogging(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}
