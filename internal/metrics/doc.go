// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

/*
Package metrics provides Prometheus metrics for the WiFind client and demo server.

All collectors are registered on the default registry through promauto, so
importing the package is enough for them to appear at /metrics:

	curl http://localhost:8000/metrics

# Available Metrics

Upstream (WiFind API) Metrics:
  - wifind_upstream_requests_total: requests sent (counter)
    Labels: variant, status_code
  - wifind_upstream_request_duration_seconds: request latency (histogram)
    Labels: variant

Demo Server Metrics:
  - api_requests_total: requests served (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: latency (histogram)
    Labels: method, endpoint
  - api_active_requests: in-flight requests (gauge)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: success / failure / rejected (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total (counter)

# Usage

	start := time.Now()
	// ... call the API ...
	metrics.RecordUpstreamRequest("scan", resp.StatusCode, time.Since(start))
*/
package metrics
