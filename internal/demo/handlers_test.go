// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package demo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/wifimapping/goapi/internal/middleware"
	"github.com/wifimapping/goapi/wifind"
)

// fakeUpstream stands in for the WiFind API and records the last query.
type fakeUpstream struct {
	mu     sync.Mutex
	status int
	body   string
	query  url.Values
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = r.URL.Query()
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.body))
}

func (f *fakeUpstream) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.query
}

func newTestRouter(t *testing.T, status int, body string) (http.Handler, *fakeUpstream) {
	t.Helper()

	upstream := &fakeUpstream{status: status, body: body}
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	client, err := wifind.NewClient(wifind.Config{URL: server.URL + "/wifipulling/"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	handler, err := NewHandler(client)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	cfg := middleware.DefaultChiConfig()
	cfg.CORSAllowedOrigins = []string{"*"}
	cfg.RateLimitDisabled = true
	return NewRouter(handler, middleware.NewChi(cfg), 5*time.Second), upstream
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndex_RendersDefaultPanels(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, http.StatusOK, "[]")
	rec := get(t, router, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	page := rec.Body.String()
	for _, want := range []string{
		`action="/scan"`,
		`action="/access-points"`,
		`name="page_size" value="5"`,
		`name="startdate" value="5/10/2016"`,
		`name="ssid" value="nyu"`,
		`value="level" checked`,
		`value="time" checked`,
		`value="caps" checked`,
		`value="lat">`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %s", want)
		}
	}
	if strings.Contains(page, `name="columns" value="columns"`) {
		t.Error("columns must not be rendered as a text option")
	}
}

func TestScanPanel_SendsTranslatedQuery(t *testing.T) {
	t.Parallel()

	router, upstream := newTestRouter(t, http.StatusOK, `[{"ssid":"nyu","level":-61}]`)
	rec := get(t, router, "/scan?page_size=5&page=0&ssid=nyu&startdate=&columns=level&columns=ssid")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `[{&#34;ssid&#34;:&#34;nyu&#34;,&#34;level&#34;:-61}]`) {
		t.Errorf("result body not rendered: %s", rec.Body.String())
	}

	query := upstream.lastQuery()
	if query.Get("batch") != "5" || query.Get("offset") != "0" {
		t.Errorf("paging not renamed: %v", query)
	}
	if query.Get("columns") != "ssid|level" {
		t.Errorf("columns = %q, want ssid|level", query.Get("columns"))
	}
	if query.Has("startdate") {
		t.Errorf("empty startdate should be dropped: %v", query)
	}
	if query.Has("distinct") {
		t.Errorf("scan query must not send distinct: %v", query)
	}
}

func TestAccessPointPanel_ForcesDistinctAndFiltersColumns(t *testing.T) {
	t.Parallel()

	router, upstream := newTestRouter(t, http.StatusOK, "[]")
	rec := get(t, router, "/access-points?columns=lat&columns=caps&columns=ssid")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	query := upstream.lastQuery()
	if query.Get("distinct") != "1" {
		t.Errorf("distinct = %q, want 1", query.Get("distinct"))
	}
	if query.Get("columns") != "ssid|caps" {
		t.Errorf("columns = %q, want ssid|caps", query.Get("columns"))
	}
}

func TestScanPanel_NoColumnsChecked(t *testing.T) {
	t.Parallel()

	router, upstream := newTestRouter(t, http.StatusOK, "[]")
	get(t, router, "/scan?ssid=nyu")

	query := upstream.lastQuery()
	if !query.Has("columns") || query.Get("columns") != "" {
		t.Errorf("expected empty columns parameter, got %v", query)
	}
}

func TestScanPanel_UpstreamError(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, http.StatusInternalServerError, "boom")
	rec := get(t, router, "/scan?ssid=nyu")

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error: request failed with status 500") {
		t.Errorf("error not rendered: %s", rec.Body.String())
	}
}

func TestProxyQuery_PassesBodyThrough(t *testing.T) {
	t.Parallel()

	router, upstream := newTestRouter(t, http.StatusOK, `{"rows":[1,2]}`)
	rec := get(t, router, "/api/v1/query?ssid=nyu&ssid=columbia&columns=time,level&bogus=1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != `{"rows":[1,2]}` {
		t.Errorf("body = %s", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	query := upstream.lastQuery()
	if query.Get("ssid") != "nyu|columbia" {
		t.Errorf("ssid = %q, want nyu|columbia", query.Get("ssid"))
	}
	if query.Get("columns") != "time|level" {
		t.Errorf("columns = %q, want time|level", query.Get("columns"))
	}
	if query.Has("bogus") || query.Has("distinct") {
		t.Errorf("unexpected parameters: %v", query)
	}
}

func TestProxyAccessPoints_PlainTextBody(t *testing.T) {
	t.Parallel()

	router, upstream := newTestRouter(t, http.StatusOK, "ssid,caps\nnyu,WPA2")
	rec := get(t, router, "/api/v1/access-points")

	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
	if upstream.lastQuery().Get("distinct") != "1" {
		t.Errorf("distinct not forced: %v", upstream.lastQuery())
	}
	if upstream.lastQuery().Has("columns") {
		t.Errorf("columns should be absent when not requested: %v", upstream.lastQuery())
	}
}

func TestProxyQuery_UpstreamStatusError(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, http.StatusServiceUnavailable, "maintenance")
	rec := get(t, router, "/api/v1/query")

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON error body: %v", err)
	}
	if resp.Status != "error" || resp.Error == nil || resp.Error.Code != "UPSTREAM_ERROR" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Error.Details["upstream_body"] != "maintenance" {
		t.Errorf("details = %v", resp.Error.Details)
	}
	if resp.Metadata.RequestID == "" {
		t.Error("expected request ID in metadata")
	}
}

func TestProxyQuery_UpstreamClientTimeout(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
			return
		}
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(upstream.Close)

	client, err := wifind.NewClient(wifind.Config{URL: upstream.URL, Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	handler, err := NewHandler(client)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	cfg := middleware.DefaultChiConfig()
	cfg.RateLimitDisabled = true
	router := NewRouter(handler, middleware.NewChi(cfg), 5*time.Second)

	rec := get(t, router, "/api/v1/query?ssid=nyu")

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", rec.Code)
	}
	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON error body: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "UPSTREAM_TIMEOUT" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestParams(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, http.StatusOK, "")
	rec := get(t, router, "/api/v1/params")

	var resp struct {
		Status string         `json:"status"`
		Data   paramsResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if len(resp.Data.Params) != 15 || len(resp.Data.QueryColumns) != 14 || len(resp.Data.APColumns) != 4 {
		t.Errorf("unexpected allow-lists: %+v", resp.Data)
	}
}

func TestHealthLiveAndMetrics(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, http.StatusOK, "")

	if rec := get(t, router, "/api/v1/health/live"); rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}
	rec := get(t, router, "/metrics")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "api_active_requests") {
		t.Errorf("metrics endpoint: status %d", rec.Code)
	}
}

func TestUpstreamError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"status", &wifind.StatusError{StatusCode: 404}, http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"open circuit", gobreaker.ErrOpenState, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE"},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT"},
		{"transport", errors.New("dial tcp: connection refused"), http.StatusBadGateway, "UPSTREAM_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, apiErr := upstreamError(tt.err)
			if status != tt.wantStatus || apiErr.Code != tt.wantCode {
				t.Errorf("upstreamError() = %d %s, want %d %s", status, apiErr.Code, tt.wantStatus, tt.wantCode)
			}
		})
	}
}
