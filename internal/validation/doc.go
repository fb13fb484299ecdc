// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

// Package validation validates configuration structs with go-playground/validator v10.
//
// A single validator instance is shared by the whole process. Field names in
// errors are taken from the koanf struct tags, so a failing server port is
// reported as "server.port must be at most 65535" rather than by its Go name.
//
// Query options sent to the WiFind API are never validated here; the client
// only filters them against its allow-lists.
package validation
