// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package config

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"
	"time"

	"github.com/wifimapping/goapi/internal/logging"
	"github.com/wifimapping/goapi/internal/validation"
	"github.com/wifimapping/goapi/wifind"
)

// Config holds the demo server configuration.
//
// Loading order (later layers win):
//  1. Defaults from defaultConfig
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/wifind/config.yaml)
//  3. Environment variables listed in envTransformFunc
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	API      APIConfig      `koanf:"api"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// APIConfig describes how the WiFind data API is reached.
//
// Environment Variables:
//   - WIFIND_API_URL: API endpoint (default: http://wifindproject.com/wifipulling/)
//   - WIFIND_API_TIMEOUT: per-request timeout, 0 disables (default: 0)
//   - WIFIND_RATE_LIMIT_RPS: outgoing requests per second, 0 disables (default: 0)
//   - WIFIND_RATE_LIMIT_BURST: outgoing burst size (default: 1)
//   - WIFIND_CIRCUIT_BREAKER: fail fast while the API is down (default: true)
type APIConfig struct {
	URL               string        `koanf:"url" validate:"required,http_url"`
	Timeout           time.Duration `koanf:"timeout" validate:"gte=0"`
	RequestsPerSecond float64       `koanf:"rate_limit_rps" validate:"gte=0"`
	Burst             int           `koanf:"rate_limit_burst" validate:"gte=1"`
	CircuitBreaker    bool          `koanf:"circuit_breaker"`
}

// ClientConfig converts the settings into a wifind.Config.
func (c APIConfig) ClientConfig() wifind.Config {
	return wifind.Config{
		URL:               c.URL,
		Timeout:           c.Timeout,
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
	}
}

// ServerConfig holds the demo HTTP listener settings.
type ServerConfig struct {
	Host    string        `koanf:"host" validate:"required"`
	Port    int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SecurityConfig holds browser-facing protections of the demo server.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins" validate:"min=1,dive,required"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller adds file:line to each entry.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Validate checks the configuration and returns a descriptive error.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if slices.Contains(c.Security.CORSOrigins, "*") && len(c.Security.CORSOrigins) > 1 {
		return fmt.Errorf("security.cors_origins: '*' cannot be combined with explicit origins")
	}
	return nil
}

// Load reads the configuration from defaults, file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LogValidationErrors logs one line per invalid field when err came from
// validation. It reports whether anything was logged.
func LogValidationErrors(err error) bool {
	var validationErr *validation.RequestValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	for _, fieldErr := range validationErr.Errors() {
		logging.Error().
			Str("field", fieldErr.Field()).
			Str("tag", fieldErr.Tag()).
			Str("param", fieldErr.Param()).
			Interface("value", fieldErr.Value()).
			Msg("Invalid configuration value")
	}
	return len(validationErr.Errors()) > 0
}
