// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package wifind

import (
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// listSeparator joins multi-valued ssid and columns fields on the wire.
const listSeparator = "|"

// isoMillis matches the date serialization browsers use for query strings.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Options holds caller-facing query options keyed by option name.
//
// Values are sent as-is apart from two fields:
//   - "columns": []string (or []any of strings, or a single column name)
//   - "ssid": a single value, or a []string / []any joined with "|"
type Options map[string]any

// WireParams holds translated parameters keyed by their wire name.
// The "ssid" and "columns" keys are always present; a nil value is not sent.
type WireParams map[string]any

// RequestColumns builds the "|"-separated column list for a request.
//
// Columns are emitted in the order of validColumns, not the order requested,
// and anything not in validColumns is left out. The second result is false
// when opts carries no columns at all.
func RequestColumns(validColumns []string, opts Options) (string, bool) {
	requested, ok := requestedColumns(opts[ParamColumns])
	if !ok {
		return "", false
	}

	columns := make([]string, 0, len(validColumns))
	for _, column := range validColumns {
		if slices.Contains(requested, column) {
			columns = append(columns, WireName(column))
		}
	}
	return strings.Join(columns, listSeparator), true
}

// RequestParams translates opts into the wire format expected by the API.
//
// Options missing from validParams are dropped without error; see DroppedKeys
// to find out which ones.
func RequestParams(validParams, validColumns []string, opts Options) WireParams {
	params := WireParams{
		ParamSSID:    joinSSID(opts[ParamSSID]),
		ParamColumns: nil,
	}
	if columns, ok := RequestColumns(validColumns, opts); ok {
		params[ParamColumns] = columns
	}

	for key, value := range opts {
		if key == ParamSSID || key == ParamColumns {
			continue
		}
		if slices.Contains(validParams, key) {
			params[WireName(key)] = value
		}
	}

	return params
}

// DroppedKeys returns, sorted, the option names RequestParams would ignore.
func DroppedKeys(validParams []string, opts Options) []string {
	var dropped []string
	for key := range opts {
		if key == ParamSSID || key == ParamColumns {
			continue
		}
		if !slices.Contains(validParams, key) {
			dropped = append(dropped, key)
		}
	}
	sort.Strings(dropped)
	return dropped
}

// requestedColumns normalizes the accepted shapes of the columns option.
func requestedColumns(value any) ([]string, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		if v == "" {
			return nil, false
		}
		return []string{v}, true
	case []string:
		if v == nil {
			return nil, false
		}
		return v, true
	case []any:
		if v == nil {
			return nil, false
		}
		names := make([]string, 0, len(v))
		for _, item := range v {
			if name, ok := item.(string); ok {
				names = append(names, name)
			}
		}
		return names, true
	default:
		return nil, false
	}
}

// joinSSID collapses a list of SSIDs into one "|"-separated value.
// Scalars, including nil, pass through unchanged.
func joinSSID(value any) any {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, listSeparator)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			if item != nil {
				parts[i] = formatValue(item)
			}
		}
		return strings.Join(parts, listSeparator)
	default:
		return value
	}
}

// Values encodes the parameters for a query string.
// Nil values are skipped and slices become repeated keys.
func (p WireParams) Values() url.Values {
	values := url.Values{}
	for key, value := range p {
		if isNil(value) {
			continue
		}

		rv := reflect.ValueOf(value)
		if (rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8) || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				item := rv.Index(i).Interface()
				if isNil(item) {
					continue
				}
				values.Add(key, formatValue(item))
			}
			continue
		}

		values.Add(key, formatValue(value))
	}
	return values
}

// Encode returns the URL-encoded query string, sorted by key.
func (p WireParams) Encode() string {
	return p.Values().Encode()
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// formatValue renders a single scalar for the query string.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.UTC().Format(isoMillis)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		return formatValue(rv.Elem().Interface())
	}
	if rv.Kind() == reflect.Map || rv.Kind() == reflect.Struct {
		if data, err := json.Marshal(value); err == nil {
			return string(data)
		}
	}
	return fmt.Sprint(value)
}
