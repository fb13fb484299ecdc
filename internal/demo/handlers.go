// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package demo

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/wifimapping/goapi/internal/logging"
	"github.com/wifimapping/goapi/wifind"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is rendered by templates/index.html.
type pageData struct {
	Panels []Panel
}

// Handler serves the demo page and the JSON proxy endpoints.
type Handler struct {
	client wifind.API
	page   *template.Template
}

// NewHandler creates a Handler backed by client.
func NewHandler(client wifind.API) (*Handler, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse demo template: %w", err)
	}
	return &Handler{client: client, page: page}, nil
}

// Index renders both query panels with their default values.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageData{Panels: []Panel{
		defaultPanel(wifind.VariantScan),
		defaultPanel(wifind.VariantAccessPoints),
	}})
}

// Scan runs the scan panel's query and renders the result under it.
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	h.executePanel(w, r, wifind.VariantScan)
}

// AccessPoints runs the access point panel's query and renders the result under it.
func (h *Handler) AccessPoints(w http.ResponseWriter, r *http.Request) {
	h.executePanel(w, r, wifind.VariantAccessPoints)
}

func (h *Handler) executePanel(w http.ResponseWriter, r *http.Request, variant wifind.Variant) {
	values := r.URL.Query()
	panel := panelFromForm(variant, values)

	status := http.StatusOK
	body, err := h.call(r.Context(), variant, formOptions(values))
	if err != nil {
		status, _ = upstreamError(err)
		panel.Text = "Error: " + err.Error()
	} else {
		panel.Text = string(body)
	}

	panels := []Panel{panel, defaultPanel(wifind.VariantAccessPoints)}
	if variant == wifind.VariantAccessPoints {
		panels = []Panel{defaultPanel(wifind.VariantScan), panel}
	}
	h.render(w, r, status, pageData{Panels: panels})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render demo page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write demo page")
	}
}

// ProxyQuery forwards a scan query and returns the API body unchanged.
func (h *Handler) ProxyQuery(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, wifind.VariantScan)
}

// ProxyAccessPoints forwards an access point query and returns the API body unchanged.
func (h *Handler) ProxyAccessPoints(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, wifind.VariantAccessPoints)
}

func (h *Handler) proxy(w http.ResponseWriter, r *http.Request, variant wifind.Variant) {
	body, err := h.call(r.Context(), variant, queryOptions(r.URL.Query()))
	if err != nil {
		status, apiErr := upstreamError(err)
		logging.Ctx(r.Context()).Warn().
			Err(err).
			Str("variant", variant.String()).
			Str("code", apiErr.Code).
			Msg("WiFind query failed")
		respondError(w, r, status, apiErr)
		return
	}

	contentType := http.DetectContentType(body)
	if json.Valid(body) {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write proxied body")
	}
}

// Params lists the accepted option names and both column allow-lists.
func (h *Handler) Params(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, paramsResponse{
		Params:       wifind.QueryParams(),
		QueryColumns: wifind.QueryColumns(),
		APColumns:    wifind.APColumns(),
	})
}

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]string{"status": "alive"})
}

func (h *Handler) call(ctx context.Context, variant wifind.Variant, opts wifind.Options) ([]byte, error) {
	if variant == wifind.VariantAccessPoints {
		return h.client.GetAccessPoints(ctx, opts)
	}
	return h.client.Query(ctx, opts)
}

// upstreamError maps a client error to the demo's response status and error body.
func upstreamError(err error) (int, *apiError) {
	var statusErr *wifind.StatusError
	var netErr net.Error
	switch {
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, &apiError{
			Code:    "UPSTREAM_ERROR",
			Message: fmt.Sprintf("WiFind API returned status %d", statusErr.StatusCode),
			Details: map[string]any{
				"upstream_status": statusErr.StatusCode,
				"upstream_body":   string(statusErr.Body),
			},
		}
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return http.StatusServiceUnavailable, &apiError{
			Code:    "UPSTREAM_UNAVAILABLE",
			Message: "WiFind API is temporarily unavailable",
		}
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return http.StatusGatewayTimeout, &apiError{
			Code:    "UPSTREAM_TIMEOUT",
			Message: "WiFind API did not respond in time",
		}
	default:
		return http.StatusBadGateway, &apiError{
			Code:    "UPSTREAM_ERROR",
			Message: "WiFind API request failed",
		}
	}
}
