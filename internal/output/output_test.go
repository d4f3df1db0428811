// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/record"
)

func sampleResult() *record.ParseResult {
	return &record.ParseResult{
		Kind: record.KindText,
		Records: []record.TestRecord{
			{Platform: "APP Android", StoryID: "PH-101", StoryTitle: "Login", TestCaseID: "PH-102", TestCaseName: "Valid credentials", Status: record.StatusPassed},
			{Platform: "APP Android", StoryID: "PH-101", StoryTitle: "Login", TestCaseID: "PH-103", TestCaseName: "Wrong password", Status: record.StatusFailed, Comment: "defect PH-900"},
			{Platform: "Site Chrome", StoryID: "PH-200", StoryTitle: "Checkout", TestCaseID: "PH-201", TestCaseName: "Pay with card", Status: record.StatusBlocked},
			{Platform: "Site Chrome", StoryID: "PH-200", StoryTitle: "Checkout", Status: record.StatusNotExecuted},
		},
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"csv", "csv-grouped", "json", "markdown"} {
		f, err := Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.Name())
	}

	_, err := Get("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv")
	assert.Contains(t, err.Error(), "markdown")
}

func TestCSVFormatter(t *testing.T) {
	result := sampleResult()
	agg := aggregate.Compute(result.Records)

	var buf bytes.Buffer
	require.NoError(t, (&CSVFormatter{}).Format(result, agg, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5) // header + 4 records
	assert.Equal(t, recordHeader, rows[0])
	assert.Equal(t, []string{"APP Android", "PH-101", "Login", "PH-102", "Valid credentials", "Passed", ""}, rows[1])
	assert.Equal(t, "defect PH-900", rows[2][6])
}

func TestCSVFormatterEmpty(t *testing.T) {
	result := &record.ParseResult{Kind: record.KindText}
	agg := aggregate.Compute(nil)

	var buf bytes.Buffer
	require.NoError(t, (&CSVFormatter{}).Format(result, agg, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, recordHeader, rows[0])
}

// Feeding the grouped CSV back through a CSV reader must reproduce the exact
// (group key, count) pairs of the aggregate it was written from.
func TestGroupedCSVRoundTrip(t *testing.T) {
	result := sampleResult()
	agg := aggregate.Compute(result.Records)

	var buf bytes.Buffer
	require.NoError(t, (&GroupedCSVFormatter{}).Format(result, agg, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, groupedHeader, rows[0])

	rebuilt := make(map[aggregate.GroupKey]int)
	for _, row := range rows[1:] {
		require.Len(t, row, len(groupedHeader))
		n, err := strconv.Atoi(row[4])
		require.NoError(t, err)
		rebuilt[aggregate.GroupKey{
			Platform:   row[0],
			StoryID:    row[1],
			StoryTitle: row[2],
			Status:     record.Status(row[3]),
		}] = n
	}
	assert.Equal(t, agg.Groups, rebuilt)
}

func TestJSONFormatter(t *testing.T) {
	result := sampleResult()
	result.Warnings = []string{"something odd"}
	agg := aggregate.Compute(result.Records)

	f := NewJSONFormatter()
	f.nowFunc = func() time.Time { return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) }
	f.idFunc = func() string { return "test-run-id" }

	var buf bytes.Buffer
	require.NoError(t, f.Format(result, agg, &buf))

	var envelope JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &envelope))

	assert.Len(t, envelope.Records, 4)
	assert.Equal(t, 4, envelope.Metadata.TotalCount)
	assert.Equal(t, record.KindText, envelope.Metadata.Kind)
	assert.Equal(t, "test-run-id", envelope.Metadata.RunID)
	assert.Equal(t, "2026-08-26T12:00:00Z", envelope.Metadata.GeneratedAt)
	assert.Equal(t, []string{"something odd"}, envelope.Metadata.Warnings)

	require.NotNil(t, envelope.Aggregate)
	assert.Equal(t, 4, envelope.Aggregate.KPIs.Total)

	// Grouped counts survive the flattening.
	require.Len(t, envelope.Groups, 4)
	assert.Equal(t, "APP Android", envelope.Groups[0].Platform)
}

func TestJSONFormatterEmpty(t *testing.T) {
	result := &record.ParseResult{Kind: record.KindXML}
	agg := aggregate.Compute(nil)

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(result, agg, &buf))

	var envelope JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &envelope))
	assert.NotNil(t, envelope.Records)
	assert.Empty(t, envelope.Records)
	assert.Equal(t, 0, envelope.Metadata.TotalCount)
	assert.NotEmpty(t, envelope.Metadata.RunID)
}

func TestMarkdownFormatter(t *testing.T) {
	result := sampleResult()
	agg := aggregate.Compute(result.Records)

	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Format(result, agg, &buf))
	out := buf.String()

	assert.Contains(t, out, "# Test Execution Report")
	assert.Contains(t, out, "| Total cases | 4 |")
	assert.Contains(t, out, "| Executed | 3 |")
	assert.Contains(t, out, "| Success % | 33.3% |")
	assert.Contains(t, out, "| APP Android | PH-101 | Login | Failed | 1 |")
	// Defect extracted from the failed case comment.
	assert.Contains(t, out, "| PH-900 | 1 |")
	assert.False(t, strings.Contains(out, "## Warnings"))
}
