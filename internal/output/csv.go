// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/record"
)

func init() {
	Register(&CSVFormatter{})
	Register(&GroupedCSVFormatter{})
}

// recordHeader is the flat-record column set, matching the record field names.
var recordHeader = []string{
	"platform", "story_id", "story_title",
	"test_case_id", "test_case_name", "status", "comment",
}

// groupedHeader is the grouped-count column set.
var groupedHeader = []string{"platform", "story_id", "story_title", "status", "total"}

// CSVFormatter writes one row per parsed record (UTF-8, comma-separated).
type CSVFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*CSVFormatter)(nil)

// Name returns the format name.
func (f *CSVFormatter) Name() string { return "csv" }

// Format writes the flat record table.
func (f *CSVFormatter) Format(result *record.ParseResult, _ *aggregate.Result, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordHeader); err != nil {
		return err
	}
	for _, r := range result.Records {
		row := []string{
			r.Platform, r.StoryID, r.StoryTitle,
			r.TestCaseID, r.TestCaseName, string(r.Status), r.Comment,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// GroupedCSVFormatter writes one row per (platform, story, status) group with
// its count — the table behind the per-story breakdown charts. Reading this
// CSV back reproduces the aggregate's grouped counts exactly.
type GroupedCSVFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*GroupedCSVFormatter)(nil)

// Name returns the format name.
func (f *GroupedCSVFormatter) Name() string { return "csv-grouped" }

// Format writes the grouped count table in stable order.
func (f *GroupedCSVFormatter) Format(_ *record.ParseResult, agg *aggregate.Result, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(groupedHeader); err != nil {
		return err
	}
	for _, g := range agg.SortedGroups() {
		row := []string{
			g.Key.Platform, g.Key.StoryID, g.Key.StoryTitle,
			string(g.Key.Status), strconv.Itoa(g.Count),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
