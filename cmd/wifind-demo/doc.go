// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

/*
Command wifind-demo serves a small web page for trying WiFind queries.

The page has two panels, one for scan queries and one for access point
queries. Each panel submits a form with a columns checklist and a handful of
filters, and shows the raw API response below it. The same queries are also
available as JSON endpoints for scripts.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	wifind
	├── api-layer
	│   └── HTTP Server
	└── background-layer
	    └── Config reload (only when a config file is in use)

Component initialization order:

 1. Configuration: Koanf v2 with config file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Client: WiFind API client, optionally behind a circuit breaker
 4. HTTP Server: Chi router with middleware stack
 5. Supervisor Tree: Suture v4 process supervision

# Endpoints

	GET  /                        demo page
	GET  /scan                    scan panel submission
	GET  /access-points           access point panel submission
	GET  /api/v1/query            scan query, response passed through
	GET  /api/v1/access-points    access point query, response passed through
	GET  /api/v1/params           accepted parameters and columns
	GET  /api/v1/health/live      liveness probe
	GET  /metrics                 Prometheus metrics

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
  - Environment variables (WIFIND_API_URL, HTTP_PORT, LOG_LEVEL, ...)
  - Config file (config.yaml, or the path in CONFIG_PATH)
  - Built-in defaults

When a config file is in use it is watched for changes. A change reloads the
log level; everything else needs a restart.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:
  - Stops accepting new connections
  - Waits for in-flight requests to complete (10s timeout)

# Example Usage

	export WIFIND_API_URL=http://wifindproject.com/wifipulling/
	export LOG_FORMAT=console
	./wifind-demo
*/
package main
