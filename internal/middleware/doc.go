// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

/*
Package middleware provides the HTTP middleware used by the demo server.

Key Components:

  - RequestID: UUID request IDs propagated into the logging context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight gauge by route pattern
  - Chi: go-chi/cors and go-chi/httprate wired from configuration
  - SecurityHeaders: nosniff, frame and referrer headers

Usage:

	mw := middleware.NewChi(&middleware.ChiConfig{...})
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog, middleware.PrometheusMetrics)
	r.Use(mw.CORS(), mw.RateLimit())
*/
package middleware
