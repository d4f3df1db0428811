// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/record"
)

func init() {
	Register(&MarkdownFormatter{})
}

// MarkdownFormatter renders a KPI summary and a grouped breakdown table in
// GitHub-flavored markdown, suitable for pasting into issues or chat.
type MarkdownFormatter struct{}

var _ Formatter = (*MarkdownFormatter)(nil)

// Name returns the format name.
func (f *MarkdownFormatter) Name() string { return "markdown" }

// Format writes the markdown report to w.
func (f *MarkdownFormatter) Format(result *record.ParseResult, agg *aggregate.Result, w io.Writer) error {
	k := agg.KPIs

	if _, err := fmt.Fprintf(w, "# Test Execution Report\n\n"); err != nil {
		return err
	}
	fmt.Fprintf(w, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(w, "| Total cases | %d |\n", k.Total)
	fmt.Fprintf(w, "| Executed | %d |\n", k.Executed)
	fmt.Fprintf(w, "| Passed | %d |\n", k.Passed)
	fmt.Fprintf(w, "| Execution %% | %.1f%% |\n", k.ExecutionPct)
	fmt.Fprintf(w, "| Success %% | %.1f%% |\n\n", k.SuccessPct)

	fmt.Fprintf(w, "## Status counts\n\n| Status | Count |\n|---|---|\n")
	for _, status := range agg.SortedStatuses() {
		fmt.Fprintf(w, "| %s | %d |\n", status, agg.StatusCounts[status])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Breakdown\n\n| Platform | Story | Title | Status | Total |\n|---|---|---|---|---|\n")
	for _, g := range agg.SortedGroups() {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %d |\n",
			g.Key.Platform, g.Key.StoryID, g.Key.StoryTitle, g.Key.Status, g.Count)
	}

	if len(agg.Defects) > 0 {
		fmt.Fprintf(w, "\n## Defects\n\n| Defect | Impacted cases |\n|---|---|\n")
		for _, d := range agg.Defects {
			fmt.Fprintf(w, "| %s | %d |\n", d.ID, d.Cases)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "\n## Warnings\n\n")
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "- %s\n", warn)
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
