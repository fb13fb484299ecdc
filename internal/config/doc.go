// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

// Package config loads the demo server configuration with koanf v2.
//
// Values are layered: struct defaults, then an optional YAML file, then
// environment variables. The result is validated with struct tags through
// the validation package before it is returned.
//
// # Environment Variables
//
//	WIFIND_API_URL           api.url
//	WIFIND_API_TIMEOUT       api.timeout
//	WIFIND_RATE_LIMIT_RPS    api.rate_limit_rps
//	WIFIND_RATE_LIMIT_BURST  api.rate_limit_burst
//	WIFIND_CIRCUIT_BREAKER   api.circuit_breaker
//	HTTP_HOST                server.host
//	HTTP_PORT                server.port
//	HTTP_TIMEOUT             server.timeout
//	CORS_ORIGINS             security.cors_origins (comma separated)
//	RATE_LIMIT_REQUESTS      security.rate_limit_reqs
//	RATE_LIMIT_WINDOW        security.rate_limit_window
//	DISABLE_RATE_LIMIT       security.rate_limit_disabled
//	LOG_LEVEL                logging.level
//	LOG_FORMAT               logging.format
//	LOG_CALLER               logging.caller
//
// # Example config.yaml
//
//	api:
//	  url: http://wifindproject.com/wifipulling/
//	  timeout: 15s
//	  circuit_breaker: true
//	server:
//	  port: 8080
//	security:
//	  cors_origins:
//	    - http://localhost:3000
//	logging:
//	  level: debug
//	  format: console
package config
