package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"horse.fit/fusiontranslate/internal/cli"
	"horse.fit/fusiontranslate/internal/config"
	"horse.fit/fusiontranslate/internal/logging"
	"horse.fit/fusiontranslate/internal/metrics"
	"horse.fit/fusiontranslate/internal/translation"
)

// environment is the state every command builds before doing work.
type environment struct {
	cfg             *config.Config
	logger          zerolog.Logger
	credentialsPath string
	store           config.CredentialStore
}

func loadEnvironment(s streams, envLoader *cli.EnvLoader) (*environment, error) {
	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(s.err, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewWithWriter(s.err, cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	path, err := cfg.CredentialsPath()
	if err != nil {
		return nil, err
	}
	store, err := config.LoadCredentials(path)
	if err != nil {
		return nil, err
	}

	return &environment{
		cfg:             cfg,
		logger:          logger,
		credentialsPath: path,
		store:           store,
	}, nil
}

// kind resolves a provider flag, falling back to TRANSLATION_PROVIDER.
func (env *environment) kind(name string) (translation.Kind, error) {
	if strings.TrimSpace(name) == "" {
		name = env.cfg.Provider
	}
	return translation.ParseKind(name)
}

func (env *environment) options(extra ...translation.Option) []translation.Option {
	opts := []translation.Option{
		translation.WithTimeout(env.cfg.HTTPTimeout),
		translation.WithLogger(env.logger),
	}
	return append(opts, extra...)
}

// translator builds one provider with flag > env > file credentials.
func (env *environment) translator(kind translation.Kind, flags translation.Credentials, extra ...translation.Option) (translation.Translator, error) {
	creds, err := config.ResolveCredentials(kind, flags, env.store)
	if err != nil {
		return nil, err
	}
	return translation.New(kind, creds, env.options(extra...)...)
}

// registry builds every provider whose credentials resolve. Providers missing
// credentials are skipped.
func (env *environment) registry(m *metrics.Metrics) (*translation.Registry, error) {
	registry := translation.NewRegistry(env.cfg.Provider)
	for _, kind := range translation.Kinds() {
		t, err := env.translator(kind, translation.Credentials{}, translation.WithMetrics(m))
		if err != nil {
			if errors.Is(err, translation.ErrMissingCredentials) {
				env.logger.Info().Str("provider", kind.String()).Msg("provider skipped: credentials not configured")
				continue
			}
			return nil, fmt.Errorf("build %s translator: %w", kind, err)
		}
		if err := registry.Register(t); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
