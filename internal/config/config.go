package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"horse.fit/fusiontranslate/internal/translation"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	Provider        string        `envconfig:"TRANSLATION_PROVIDER" default:"mymemory"`
	HTTPTimeout     time.Duration `envconfig:"TRANSLATION_HTTP_TIMEOUT" default:"15s"`
	CredentialsFile string        `envconfig:"FUSION_CREDENTIALS_FILE" default:""`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := translation.ParseKind(c.Provider); err != nil {
		return fmt.Errorf("TRANSLATION_PROVIDER: %w", err)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("TRANSLATION_HTTP_TIMEOUT must be > 0")
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		return fmt.Errorf("LOG_LEVEL is required")
	}
	return nil
}

// CredentialsPath returns the credentials file location, falling back to
// DefaultCredentialsPath.
func (c *Config) CredentialsPath() (string, error) {
	if c != nil {
		if path := strings.TrimSpace(c.CredentialsFile); path != "" {
			return path, nil
		}
	}
	return DefaultCredentialsPath()
}

func (c *Config) CORSAllowedOriginsList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if _, exists := seen[origin]; exists {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	return origins
}
