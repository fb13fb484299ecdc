// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

// Package logging provides the zerolog-based structured logger shared by the
// WiFind client, CLI and demo server.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("url", apiURL).Msg("Client configured")
//	logging.Error().Err(err).Msg("Query failed")
//
//	// With request and correlation IDs from the demo middleware
//	logging.Ctx(ctx).Debug().Msg("Proxying access point query")
//
// # Configuration
//
// Environment variables (read through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # slog Interop
//
// NewSlogLogger returns an *slog.Logger writing through zerolog; the
// supervisor tree hands it to sutureslog.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
