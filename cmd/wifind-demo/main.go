// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wifimapping/goapi/internal/config"
	"github.com/wifimapping/goapi/internal/demo"
	"github.com/wifimapping/goapi/internal/logging"
	"github.com/wifimapping/goapi/internal/middleware"
	"github.com/wifimapping/goapi/internal/supervisor"
	"github.com/wifimapping/goapi/internal/supervisor/services"
	"github.com/wifimapping/goapi/wifind"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.LogValidationErrors(err)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(loggingConfig(cfg))

	logging.Info().
		Str("api_url", cfg.API.URL).
		Bool("circuit_breaker", cfg.API.CircuitBreaker).
		Str("addr", cfg.Server.Addr()).
		Msg("Configuration loaded")

	client, err := newAPIClient(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create WiFind client")
	}

	handler, err := demo.NewHandler(client)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create demo handler")
	}

	mw := middleware.NewChi(chiConfig(cfg))
	router := demo.NewRouter(handler, mw, cfg.Server.Timeout)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if path := config.ConfigFile(); path != "" {
		tree.AddBackgroundService(services.NewConfigReloadService(path, config.WatchConfigFile, reloadLogLevel))
		logging.Info().Str("path", path).Msg("Config reload service added")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newAPIClient builds the upstream client, behind a circuit breaker if enabled.
func newAPIClient(cfg *config.Config) (wifind.API, error) {
	client, err := wifind.NewClient(cfg.API.ClientConfig())
	if err != nil {
		return nil, err
	}
	if cfg.API.CircuitBreaker {
		return wifind.NewCircuitBreakerClient(client), nil
	}
	return client, nil
}

func loggingConfig(cfg *config.Config) logging.Config {
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logCfg.Output = os.Stderr
	return logCfg
}

func chiConfig(cfg *config.Config) *middleware.ChiConfig {
	chiCfg := middleware.DefaultChiConfig()
	chiCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	chiCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	chiCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	chiCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return chiCfg
}

// reloadLogLevel re-reads the configuration and applies its log level.
func reloadLogLevel() error {
	cfg, err := config.Load()
	if err != nil {
		config.LogValidationErrors(err)
		return err
	}
	logging.SetLevelString(cfg.Logging.Level)
	logging.Info().Str("level", cfg.Logging.Level).Msg("Log level reloaded")
	return nil
}
