// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

// Command wifind runs a single WiFind query and prints the response body.
//
// Usage:
//
//	wifind [-ap] [-pretty] [-url URL] [-timeout 0] key=value ...
//
// The columns and ssid keys take comma-separated lists:
//
//	wifind -pretty columns=lat,lng,ssid ssid=eduroam,guest page_size=50
//	wifind -ap columns=ssid,bssid freq=2412
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"

	"github.com/wifimapping/goapi/internal/logging"
	"github.com/wifimapping/goapi/wifind"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wifind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	accessPoints := fs.Bool("ap", false, "query unique access points instead of scans")
	pretty := fs.Bool("pretty", false, "indent JSON responses")
	apiURL := fs.String("url", wifind.DefaultURL, "WiFind API URL")
	timeout := fs.Duration("timeout", 0, "request timeout (0 waits indefinitely)")
	logLevel := fs.String("log-level", "warn", "log level")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: wifind [flags] key=value ...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = *logLevel
	logCfg.Format = "console"
	logCfg.Output = stderr
	logging.Init(logCfg)

	opts, err := parseOptions(fs.Args())
	if err != nil {
		logging.Error().Err(err).Msg("Invalid argument")
		return 2
	}

	client, err := wifind.NewClient(wifind.Config{URL: *apiURL, Timeout: *timeout})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create client")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithNewCorrelationID(ctx)

	variant := wifind.VariantScan
	if *accessPoints {
		variant = wifind.VariantAccessPoints
	}
	logging.Debug().Str("url", client.RequestURL(variant, opts)).Msg("Sending request")

	start := time.Now()
	body, err := client.Do(ctx, variant, opts)
	if err != nil {
		logging.Err(err).Str("variant", variant.String()).Msg("Request failed")
		return 1
	}
	logging.Debug().Dur("duration", time.Since(start)).Int("bytes", len(body)).Msg("Request completed")

	if *pretty {
		body = indentJSON(body)
	}
	if _, err := stdout.Write(body); err != nil {
		return 1
	}
	if len(body) > 0 && body[len(body)-1] != '\n' {
		fmt.Fprintln(stdout)
	}
	return 0
}

// indentJSON indents body when it is JSON and returns it unchanged otherwise.
func indentJSON(body []byte) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return body
	}
	return buf.Bytes()
}
