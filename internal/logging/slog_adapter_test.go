// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		log       func(*slog.Logger)
		wantLevel string
	}{
		{name: "info", log: func(l *slog.Logger) { l.Info("msg") }, wantLevel: `"level":"info"`},
		{name: "warn", log: func(l *slog.Logger) { l.Warn("msg") }, wantLevel: `"level":"warn"`},
		{name: "error", log: func(l *slog.Logger) { l.Error("msg") }, wantLevel: `"level":"error"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

			tt.log(logger)

			if !strings.Contains(buf.String(), tt.wantLevel) {
				t.Errorf("expected %s, got: %s", tt.wantLevel, buf.String())
			}
		})
	}
}

func TestSlogHandler_Attributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf))).
		With("supervisor", "wifind").
		WithGroup("service")

	logger.Info("service restarted",
		"name", "http-server",
		"restarts", 2,
		"healthy", true,
		"backoff", 15*time.Second,
	)

	output := buf.String()
	for _, want := range []string{
		`"supervisor":"wifind"`,
		`"service.name":"http-server"`,
		`"service.restarts":2`,
		`"service.healthy":true`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	handler := NewSlogHandlerWithLogger(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error to be enabled at warn level")
	}
}
