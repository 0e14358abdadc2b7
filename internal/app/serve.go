package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"horse.fit/fusiontranslate/internal/cli"
	"horse.fit/fusiontranslate/internal/httpapi"
	"horse.fit/fusiontranslate/internal/langdetect"
	"horse.fit/fusiontranslate/internal/metrics"
)

func runServe(s streams, args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(s.err)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	host := fs.String("host", "0.0.0.0", "Host interface to bind")
	port := fs.Int("port", 8090, "HTTP port")
	readTimeout := fs.Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	writeTimeout := fs.Duration("write-timeout", 60*time.Second, "HTTP write timeout")
	shutdownTimeout := fs.Duration("shutdown-timeout", 10*time.Second, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *port <= 0 || *port > 65535 {
		fmt.Fprintln(s.err, "--port must be between 1 and 65535")
		return 2
	}

	env, err := loadEnvironment(s, envLoader)
	if err != nil {
		fmt.Fprintln(s.err, err)
		return 1
	}

	m := metrics.New()
	registry, err := env.registry(m)
	if err != nil {
		env.logger.Error().Err(err).Msg("serve failed to build providers")
		fmt.Fprintf(s.err, "Failed to build providers: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		cancel()
	}()

	srv := httpapi.NewServer(registry, m, langdetect.Detect, env.logger, httpapi.Options{
		Host:               *host,
		Port:               *port,
		ReadTimeout:        *readTimeout,
		WriteTimeout:       *writeTimeout,
		ShutdownTimeout:    *shutdownTimeout,
		CORSAllowedOrigins: env.cfg.CORSAllowedOriginsList(),
	})

	env.logger.Info().
		Strs("providers", registry.ProviderNames()).
		Str("default_provider", registry.DefaultProvider()).
		Msg("providers configured")

	if err := srv.Start(ctx); err != nil {
		env.logger.Error().Err(err).Str("host", *host).Int("port", *port).Msg("server failed")
		fmt.Fprintf(s.err, "Server failed: %v\n", err)
		return 1
	}
	return 0
}
