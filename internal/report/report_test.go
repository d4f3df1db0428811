// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/record"
)

func TestTable_BasicRender(t *testing.T) {
	tbl := NewTable(
		Column{Header: "Name"},
		Column{Header: "Count", Align: AlignRight},
	)
	tbl.AddRow("alpha", "10")
	tbl.AddRow("bravo-long", "5")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Count")
	assert.Contains(t, out, "----------")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "bravo-long")
}

func TestTable_MissingAndExtraValues(t *testing.T) {
	tbl := NewTable(Column{Header: "A"}, Column{Header: "B"})
	tbl.AddRow("only")
	tbl.AddRow("x", "y", "ignored")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "only")
	assert.NotContains(t, out, "ignored")
}

func TestTable_EmptyColumns(t *testing.T) {
	tbl := NewTable()
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Empty(t, buf.String())
}

func TestColorStatus_PassThrough(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	// Canonical labels survive coloring with NoColor set.
	assert.Equal(t, "Passed", ColorStatus("Passed"))
	assert.Equal(t, "Failed", ColorStatus("Failed"))
	// Verbatim-preserved unknown statuses are never colored.
	assert.Equal(t, "Em Análise", ColorStatus("Em Análise"))
}

func TestRender_FullDashboard(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	result := &record.ParseResult{
		Kind: record.KindText,
		Records: []record.TestRecord{
			{Platform: "APP Android", StoryID: "PH-101", StoryTitle: "Login", Status: record.StatusPassed},
			{Platform: "APP Android", StoryID: "PH-101", StoryTitle: "Login", Status: record.StatusFailed, Comment: "defect PH-900 blocked checkout"},
			{Platform: "Site Chrome", StoryID: "PH-200", StoryTitle: "Checkout", Status: record.StatusNotExecuted},
		},
		Warnings: []string{"no recognizable structure in 2 trailing lines"},
	}
	agg := aggregate.Compute(result.Records)

	var buf bytes.Buffer
	require.NoError(t, Render(result, agg, &buf))
	out := buf.String()

	assert.Contains(t, out, "Execution KPIs")
	assert.Contains(t, out, "Total cases")
	assert.Contains(t, out, "Status counts")
	assert.Contains(t, out, "Breakdown by platform and story")
	assert.Contains(t, out, "APP Android")
	assert.Contains(t, out, "PH-101")
	assert.Contains(t, out, "Defects")
	assert.Contains(t, out, "PH-900")
	assert.Contains(t, out, "warning: no recognizable structure")
}

func TestRender_NoDefectsSectionWhenEmpty(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	result := &record.ParseResult{
		Kind: record.KindText,
		Records: []record.TestRecord{
			{Platform: "Site Chrome", StoryID: "PH-1", StoryTitle: "X", Status: record.StatusPassed},
		},
	}
	agg := aggregate.Compute(result.Records)

	var buf bytes.Buffer
	require.NoError(t, Render(result, agg, &buf))
	assert.False(t, strings.Contains(buf.String(), "Defects"))
}
