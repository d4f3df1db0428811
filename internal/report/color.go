// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/testlens/testlens/internal/record"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBlue   = color.New(color.FgBlue)
	colorBold   = color.New(color.Bold)
)

// ColorStatus colors canonical status labels. Unrecognized statuses pass
// through unchanged, matching their verbatim preservation in the data.
func ColorStatus(val string) string {
	switch record.Status(val) {
	case record.StatusPassed:
		return colorGreen.Sprint(val)
	case record.StatusFailed:
		return colorRed.Sprint(val)
	case record.StatusBlocked:
		return colorYellow.Sprint(val)
	case record.StatusNotExecuted:
		return colorBlue.Sprint(val)
	default:
		return val
	}
}

// ColorPct colors a percentage label: green at or above 90, yellow at or
// above 50, red below.
func ColorPct(pct float64) string {
	s := fmt.Sprintf("%.1f%%", pct)
	switch {
	case pct >= 90:
		return colorGreen.Sprint(s)
	case pct >= 50:
		return colorYellow.Sprint(s)
	default:
		return colorRed.Sprint(s)
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
