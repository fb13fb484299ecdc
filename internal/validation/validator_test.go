// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package validation

import (
	"strings"
	"testing"
	"time"
)

type testServer struct {
	Host string `koanf:"host" validate:"required"`
	Port int    `koanf:"port" validate:"min=1,max=65535"`
}

type testConfig struct {
	URL      string        `koanf:"url" validate:"required,url"`
	Timeout  time.Duration `koanf:"timeout" validate:"gt=0"`
	Format   string        `koanf:"format" validate:"oneof=json console"`
	Server   testServer    `koanf:"server"`
	Untagged string        `validate:"omitempty,min=3"`
}

func validConfig() testConfig {
	return testConfig{
		URL:     "http://wifindproject.com/wifipulling/",
		Timeout: 30 * time.Second,
		Format:  "json",
		Server:  testServer{Host: "0.0.0.0", Port: 3857},
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := ValidateStruct(&cfg); err != nil {
		t.Errorf("ValidateStruct() returned unexpected error: %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(*testConfig)
		wantField   string
		wantTag     string
		wantMessage string
	}{
		{
			name:        "missing url",
			mutate:      func(c *testConfig) { c.URL = "" },
			wantField:   "url",
			wantTag:     "required",
			wantMessage: "url is required",
		},
		{
			name:        "malformed url",
			mutate:      func(c *testConfig) { c.URL = "nope" },
			wantField:   "url",
			wantTag:     "url",
			wantMessage: "url must be a valid URL",
		},
		{
			name:        "zero timeout",
			mutate:      func(c *testConfig) { c.Timeout = 0 },
			wantField:   "timeout",
			wantTag:     "gt",
			wantMessage: "timeout must be greater than 0",
		},
		{
			name:        "unknown format",
			mutate:      func(c *testConfig) { c.Format = "xml" },
			wantField:   "format",
			wantTag:     "oneof",
			wantMessage: "format must be one of: json console",
		},
		{
			name:        "nested port too high",
			mutate:      func(c *testConfig) { c.Server.Port = 70000 },
			wantField:   "server.port",
			wantTag:     "max",
			wantMessage: "server.port must be at most 65535",
		},
		{
			name:        "untagged field uses Go name",
			mutate:      func(c *testConfig) { c.Untagged = "ab" },
			wantField:   "Untagged",
			wantTag:     "min",
			wantMessage: "Untagged must be at least 3 characters",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := ValidateStruct(&cfg)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %v", errs)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("got field=%s tag=%s, want field=%s tag=%s",
					errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMessage {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMessage)
			}
		})
	}
}

func TestRequestValidationError_JoinsMessages(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.URL = ""
	cfg.Server.Host = ""

	err := ValidateStruct(&cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "url is required") || !strings.Contains(msg, "server.host is required") {
		t.Errorf("Error() = %q", msg)
	}
	if !strings.Contains(msg, "; ") {
		t.Errorf("expected messages joined with '; ', got %q", msg)
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	if got := (&RequestValidationError{}).Error(); got != "validation failed" {
		t.Errorf("Error() = %q", got)
	}
}
