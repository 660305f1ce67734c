// Package config loads pipeline configuration from the environment.
// Credentials are resolved once at startup into an explicit Config value
// that is passed by parameter into the API clients; library code never
// reads the environment on its own.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hellenic-development/figma-suggest/pkg/apierror"
)

// Environment variable names recognized by Load.
const (
	EnvFigmaToken   = "FIGMA_TOKEN"
	EnvFigmaFileKey = "FIGMA_FILE_KEY"
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvOpenAIModel  = "OPENAI_MODEL"
	EnvTemperature  = "OPENAI_TEMPERATURE"
	EnvMaxTokens    = "OPENAI_MAX_TOKENS"
)

// Defaults for the optional model parameters.
const (
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.2
	DefaultMaxTokens   = 512
)

// Config holds everything a single pipeline run needs.
type Config struct {
	FigmaToken   string
	FigmaFileKey string
	OpenAIKey    string

	Model       string
	Temperature float64
	MaxTokens   int
}

// Load reads configuration from the environment, consulting a .env file if
// one exists. A missing required value fails with a configuration error
// before any network call is attempted.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		FigmaToken:   strings.TrimSpace(os.Getenv(EnvFigmaToken)),
		FigmaFileKey: strings.TrimSpace(os.Getenv(EnvFigmaFileKey)),
		OpenAIKey:    strings.TrimSpace(os.Getenv(EnvOpenAIKey)),
		Model:        firstNonEmpty(strings.TrimSpace(os.Getenv(EnvOpenAIModel)), DefaultModel),
		Temperature:  DefaultTemperature,
		MaxTokens:    DefaultMaxTokens,
	}

	if raw := strings.TrimSpace(os.Getenv(EnvTemperature)); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			cfg.Temperature = v
		}
	}
	if raw := strings.TrimSpace(os.Getenv(EnvMaxTokens)); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cfg.MaxTokens = v
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks that every required credential is present.
func (c *Config) Validate() error {
	var missing []string

	if c.FigmaToken == "" {
		missing = append(missing, EnvFigmaToken)
	}
	if c.FigmaFileKey == "" {
		missing = append(missing, EnvFigmaFileKey)
	}
	if c.OpenAIKey == "" {
		missing = append(missing, EnvOpenAIKey)
	}

	if len(missing) > 0 {
		return apierror.Newf(apierror.KindConfigurationMissing,
			"required settings not set: %s", strings.Join(missing, ", "))
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
