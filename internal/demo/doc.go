// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

// Package demo serves a small web page for trying WiFind queries by hand.
//
// The page has two forms, one per query variant. Each form has a text input
// for every accepted option and a checkbox for every column of its variant.
// Submitting a form runs the query through the client and shows the raw
// response body under the form.
//
// The same translation is available as JSON under /api/v1 for scripts.
package demo
