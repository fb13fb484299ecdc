// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

/*
Package wifind is a client for the WiFind data API, a database of WiFi scans
and access points collected by the WiFind Android app.

The package translates caller-facing query options into the parameter names
the remote API understands and issues a plain HTTP GET. There is no paging
state, caching, or retrying: every call is independent.

Key Components:

  - Options / WireParams: caller options and their wire-format translation
  - RequestParams / RequestColumns: the translation rules
  - Variant: the two query shapes (individual scans, unique access points)
  - Client: HTTP transport with optional client-side throttling
  - CircuitBreakerClient: fail-fast wrapper backed by sony/gobreaker

Translation Rules:

 1. page_size and page are sent as batch and offset
 2. columns is filtered against the variant's allow-list, emitted in the
    allow-list's order and joined with "|"
 3. ssid may be a single value or a list; a list is joined with "|"
 4. keys outside the parameter allow-list are silently dropped
 5. the access point query always sends distinct=1

Usage Example:

	client, err := wifind.NewClient(wifind.Config{})
	if err != nil {
	    return err
	}

	body, err := client.Query(ctx, wifind.Options{
	    "ssid":      []string{"nyu", "columbia"},
	    "columns":   []string{"level", "ssid"},
	    "page_size": 5,
	    "page":      0,
	})
	// GET ...?batch=5&columns=ssid%7Clevel&offset=0&ssid=nyu%7Ccolumbia

The response body is returned verbatim; its format is controlled by the
remote service. Decode is provided for callers who know it is JSON.
*/
package wifind
