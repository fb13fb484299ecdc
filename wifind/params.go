// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package wifind

import (
	"slices"
)

// DefaultURL is the WiFind API endpoint used when Config.URL is empty.
const DefaultURL = "http://wifindproject.com/wifipulling/"

// Option and column names with special handling.
const (
	ParamColumns  = "columns"
	ParamSSID     = "ssid"
	ParamDistinct = "distinct"
)

// renames maps caller-facing names to the names the API still uses.
// Applies to both parameter and column names.
var renames = map[string]string{
	"page_size": "batch",
	"page":      "offset",
}

var queryParams = []string{
	"page_size", "page", "acc", "altitude", "startdate",
	"enddate", "device_mac", "app_version", "droid_version",
	"bssid", "caps", "level", "freq",
	"columns", "ssid",
}

var queryColumns = []string{
	"lat", "lng", "acc", "altitude", "time", "device_mac",
	"app_version", "droid_version", "device_model", "ssid", "bssid",
	"caps", "level", "freq",
}

var apColumns = []string{
	"ssid", "bssid", "caps", "freq",
}

// QueryParams returns the option names accepted by both query variants.
func QueryParams() []string {
	return slices.Clone(queryParams)
}

// QueryColumns returns the columns a scan query can return, in wire order.
func QueryColumns() []string {
	return slices.Clone(queryColumns)
}

// APColumns returns the columns an access point query can return, in wire order.
func APColumns() []string {
	return slices.Clone(apColumns)
}

// WireName returns the name the API expects for a caller-facing option or column.
func WireName(name string) string {
	if renamed, ok := renames[name]; ok {
		return renamed
	}
	return name
}

// Variant selects one of the two query shapes the API supports.
type Variant int

const (
	// VariantScan queries individual scan records.
	VariantScan Variant = iota
	// VariantAccessPoints queries deduplicated access points.
	VariantAccessPoints
)

// String returns the variant name used in logs and metric labels.
func (v Variant) String() string {
	switch v {
	case VariantScan:
		return "scan"
	case VariantAccessPoints:
		return "access_points"
	default:
		return "unknown"
	}
}

// Columns returns the variant's column allow-list.
func (v Variant) Columns() []string {
	if v == VariantAccessPoints {
		return APColumns()
	}
	return QueryColumns()
}

// Params translates opts into wire parameters for this variant.
// The access point variant always sends distinct=1, whatever opts contains.
func (v Variant) Params(opts Options) WireParams {
	var columns []string
	if v == VariantAccessPoints {
		columns = apColumns
	} else {
		columns = queryColumns
	}

	params := RequestParams(queryParams, columns, opts)
	if v == VariantAccessPoints {
		params[ParamDistinct] = 1
	}
	return params
}
