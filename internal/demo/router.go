// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package demo

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wifimapping/goapi/internal/middleware"
)

// NewRouter wires the demo routes.
//
//	GET /                        demo page
//	GET /scan, /access-points    demo form submissions
//	GET /api/v1/query            scan query proxy
//	GET /api/v1/access-points    access point query proxy
//	GET /api/v1/params           accepted option and column names
//	GET /api/v1/health/live      liveness
//	GET /metrics                 Prometheus
//
// requestTimeout bounds each page and proxy request, including the upstream call.
func NewRouter(h *Handler, mw *middleware.Chi, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(mw.CORS())

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit())
		r.Use(middleware.SecurityHeaders)
		r.Use(chimiddleware.Compress(5))
		r.Use(chimiddleware.Timeout(requestTimeout))

		r.Get("/", h.Index)
		r.Get("/scan", h.Scan)
		r.Get("/access-points", h.AccessPoints)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SecurityHeaders)

		r.Get("/health/live", h.HealthLive)

		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit())
			r.Use(chimiddleware.Timeout(requestTimeout))

			r.Get("/query", h.ProxyQuery)
			r.Get("/access-points", h.ProxyAccessPoints)
			r.Get("/params", h.Params)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
