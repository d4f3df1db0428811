// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

// Package report renders the terminal dashboard: KPIs, status counts, the
// per-story breakdown, and defect impact.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/record"
)

// Render writes the full dashboard for one parsed document to w.
func Render(result *record.ParseResult, agg *aggregate.Result, w io.Writer) error {
	if err := renderKPIs(agg, w); err != nil {
		return err
	}
	if err := renderStatusCounts(agg, w); err != nil {
		return err
	}
	if err := renderBreakdown(agg, w); err != nil {
		return err
	}
	if err := renderDefects(agg, w); err != nil {
		return err
	}
	return renderWarnings(result, w)
}

func renderKPIs(agg *aggregate.Result, w io.Writer) error {
	k := agg.KPIs
	if _, err := fmt.Fprintf(w, "%s\n\n", SectionTitle("Execution KPIs")); err != nil {
		return err
	}
	t := NewTable(
		Column{Header: "Metric"},
		Column{Header: "Value", Align: AlignRight},
	)
	t.AddRow("Total cases", strconv.Itoa(k.Total))
	t.AddRow("Executed", strconv.Itoa(k.Executed))
	t.AddRow("Passed", strconv.Itoa(k.Passed))
	t.AddRow("Execution %", ColorPct(k.ExecutionPct))
	t.AddRow("Success %", ColorPct(k.SuccessPct))
	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func renderStatusCounts(agg *aggregate.Result, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", SectionTitle("Status counts")); err != nil {
		return err
	}
	t := NewTable(
		Column{Header: "Status", Color: ColorStatus},
		Column{Header: "Count", Align: AlignRight},
	)
	for _, status := range agg.SortedStatuses() {
		t.AddRow(string(status), strconv.Itoa(agg.StatusCounts[status]))
	}
	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func renderBreakdown(agg *aggregate.Result, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", SectionTitle("Breakdown by platform and story")); err != nil {
		return err
	}
	t := NewTable(
		Column{Header: "Platform"},
		Column{Header: "Story"},
		Column{Header: "Title"},
		Column{Header: "Status", Color: ColorStatus},
		Column{Header: "Total", Align: AlignRight},
	)
	for _, g := range agg.SortedGroups() {
		t.AddRow(g.Key.Platform, g.Key.StoryID, g.Key.StoryTitle,
			string(g.Key.Status), strconv.Itoa(g.Count))
	}
	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func renderDefects(agg *aggregate.Result, w io.Writer) error {
	if len(agg.Defects) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", SectionTitle("Defects")); err != nil {
		return err
	}
	t := NewTable(
		Column{Header: "Defect"},
		Column{Header: "Impacted cases", Align: AlignRight},
	)
	for _, d := range agg.Defects {
		t.AddRow(d.ID, strconv.Itoa(d.Cases))
	}
	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func renderWarnings(result *record.ParseResult, w io.Writer) error {
	for _, warn := range result.Warnings {
		if _, err := fmt.Fprintf(w, "%s %s\n", colorYellow.Sprint("warning:"), warn); err != nil {
			return err
		}
	}
	return nil
}
