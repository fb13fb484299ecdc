// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wifimapping/goapi/wifind"
)

// errMissingSeparator is returned for an argument without "=".
var errMissingSeparator = errors.New("expected key=value")

// parseOptions turns key=value arguments into query options.
// The columns and ssid keys take comma-separated lists. A repeated key keeps
// its last value, apart from the list keys which accumulate.
func parseOptions(args []string) (wifind.Options, error) {
	opts := wifind.Options{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", errMissingSeparator, arg)
		}

		if key == wifind.ParamColumns || key == wifind.ParamSSID {
			list, _ := opts[key].([]string)
			opts[key] = append(list, splitList(value)...)
			continue
		}
		opts[key] = value
	}
	return opts, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}
