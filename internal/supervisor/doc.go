// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

/*
Package supervisor runs the demo server's services under a suture v4 tree.

Services restart with backoff when they fail, and the whole tree stops when
the root context is canceled. Supervisor events are logged through
sutureslog into the zerolog logger:

	logger := logging.NewSlogLogger()
	tree := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err := tree.Serve(ctx)

Service adapters live in the services subpackage.
*/
package supervisor
