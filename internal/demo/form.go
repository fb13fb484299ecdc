// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package demo

import (
	"net/url"
	"slices"
	"strings"

	"github.com/wifimapping/goapi/wifind"
)

// Field is one text input of a panel form.
type Field struct {
	Name  string
	Value string
}

// Column is one column checkbox of a panel form.
type Column struct {
	Name    string
	Checked bool
}

// Panel is the state of one query form on the demo page.
type Panel struct {
	Title   string
	Action  string
	Params  []Field
	Columns []Column
	Text    string
}

// panelDefaults holds the initial form values of a panel.
type panelDefaults struct {
	title   string
	action  string
	params  map[string]string
	columns []string
}

var scanDefaults = panelDefaults{
	title:  "Query",
	action: "/scan",
	params: map[string]string{
		"page_size": "5",
		"page":      "0",
		"startdate": "5/10/2016",
		"ssid":      "nyu",
	},
	columns: []string{"ssid", "level", "time"},
}

var accessPointDefaults = panelDefaults{
	title:  "Access Points",
	action: "/access-points",
	params: map[string]string{
		"page_size": "5",
		"page":      "0",
		"startdate": "5/10/2016",
	},
	columns: []string{"ssid", "caps"},
}

func defaultsFor(variant wifind.Variant) panelDefaults {
	if variant == wifind.VariantAccessPoints {
		return accessPointDefaults
	}
	return scanDefaults
}

// defaultPanel returns the panel as first shown.
func defaultPanel(variant wifind.Variant) Panel {
	d := defaultsFor(variant)
	values := url.Values{}
	for name, value := range d.params {
		values.Set(name, value)
	}
	values[wifind.ParamColumns] = d.columns
	return panelFromForm(variant, values)
}

// panelFromForm rebuilds a panel from submitted form values.
// One input is shown per accepted option except columns, which become checkboxes.
func panelFromForm(variant wifind.Variant, values url.Values) Panel {
	d := defaultsFor(variant)
	panel := Panel{Title: d.title, Action: d.action}

	for _, name := range wifind.QueryParams() {
		if name == wifind.ParamColumns {
			continue
		}
		panel.Params = append(panel.Params, Field{Name: name, Value: values.Get(name)})
	}

	checked := splitColumns(values[wifind.ParamColumns])
	for _, name := range variant.Columns() {
		panel.Columns = append(panel.Columns, Column{Name: name, Checked: slices.Contains(checked, name)})
	}
	return panel
}

// formOptions converts a panel submission into client options. Empty inputs
// are left out, and columns is always sent, even when nothing is checked.
func formOptions(values url.Values) wifind.Options {
	opts := queryOptions(values)
	if _, ok := opts[wifind.ParamColumns]; !ok {
		opts[wifind.ParamColumns] = []string{}
	}
	return opts
}

// queryOptions converts query string values into client options.
//
// Empty values are dropped. A key given once becomes a string, a repeated key
// a []string. columns may be repeated or comma separated.
func queryOptions(values url.Values) wifind.Options {
	opts := wifind.Options{}
	for key, vals := range values {
		if key == wifind.ParamColumns {
			opts[key] = splitColumns(vals)
			continue
		}

		nonEmpty := make([]string, 0, len(vals))
		for _, v := range vals {
			if v != "" {
				nonEmpty = append(nonEmpty, v)
			}
		}
		switch len(nonEmpty) {
		case 0:
		case 1:
			opts[key] = nonEmpty[0]
		default:
			opts[key] = nonEmpty
		}
	}
	return opts
}

func splitColumns(vals []string) []string {
	columns := make([]string, 0, len(vals))
	for _, v := range vals {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				columns = append(columns, name)
			}
		}
	}
	return columns
}
