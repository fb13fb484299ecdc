// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

/*
Package services adapts long-running components to suture.Service.

  - HTTPServerService: *http.Server with graceful shutdown
  - ConfigReloadService: re-applies config.yaml when the file changes

Each service returns ctx.Err() after a requested shutdown and a wrapped
error on failure, which tells the supervisor to restart it.
*/
package services
