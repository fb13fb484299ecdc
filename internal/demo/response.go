// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package demo

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/wifimapping/goapi/internal/logging"
	"github.com/wifimapping/goapi/internal/middleware"
)

// apiResponse is the envelope of every JSON response the demo generates.
// Proxied API bodies are passed through without it.
type apiResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata metadata  `json:"metadata"`
	Error    *apiError `json:"error,omitempty"`
}

type metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

type apiError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// paramsResponse lists the accepted option and column names.
type paramsResponse struct {
	Params       []string `json:"params"`
	QueryColumns []string `json:"query_columns"`
	APColumns    []string `json:"ap_columns"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *apiResponse) {
	response.Metadata.Timestamp = time.Now().UTC()
	response.Metadata.RequestID = middleware.GetRequestID(r.Context())

	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

func respondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	respondJSON(w, r, http.StatusOK, &apiResponse{Status: "success", Data: data})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *apiError) {
	respondJSON(w, r, status, &apiResponse{Status: "error", Error: apiErr})
}
