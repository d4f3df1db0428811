// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

// Package aggregate derives status counts, grouped counts, and KPIs from a
// parsed record list. Aggregation is pure: one document in, one Result out,
// and zero extracted records yields an explicitly empty Result, never an
// error — the caller surfaces a warning and keeps rendering what it can.
package aggregate

import (
	"sort"

	"github.com/testlens/testlens/internal/record"
)

// GroupKey identifies one (platform, story, status) bucket in the detail
// breakdown.
type GroupKey struct {
	Platform   string        `json:"platform"`
	StoryID    string        `json:"story_id"`
	StoryTitle string        `json:"story_title"`
	Status     record.Status `json:"status"`
}

// KPIs are the derived summary metrics. Percentages are defined as 0 when
// their denominator is 0.
type KPIs struct {
	Total        int     `json:"total_cases"`
	Passed       int     `json:"passed_cases"`
	Executed     int     `json:"executed_cases"`
	ExecutionPct float64 `json:"execution_pct"`
	SuccessPct   float64 `json:"success_pct"`
}

// Result is the read-only aggregate view over one document's records.
type Result struct {
	StatusCounts map[record.Status]int `json:"status_counts"`
	Groups       map[GroupKey]int      `json:"-"`
	KPIs         KPIs                  `json:"kpis"`
	Defects      []DefectImpact        `json:"defects,omitempty"`
}

// Compute aggregates the full ordered record list for one document.
func Compute(records []record.TestRecord) *Result {
	res := &Result{
		StatusCounts: make(map[record.Status]int),
		Groups:       make(map[GroupKey]int),
	}
	for _, r := range records {
		res.StatusCounts[r.Status]++
		res.Groups[GroupKey{
			Platform:   r.Platform,
			StoryID:    r.StoryID,
			StoryTitle: r.StoryTitle,
			Status:     r.Status,
		}]++
	}
	res.KPIs = computeKPIs(res.StatusCounts)
	res.Defects = DefectImpacts(records)
	return res
}

func computeKPIs(counts map[record.Status]int) KPIs {
	var k KPIs
	for status, n := range counts {
		k.Total += n
		if status == record.StatusPassed {
			k.Passed += n
		}
		if status.Executed() {
			k.Executed += n
		}
	}
	if k.Total > 0 {
		k.ExecutionPct = float64(k.Executed) / float64(k.Total) * 100
	}
	if k.Executed > 0 {
		k.SuccessPct = float64(k.Passed) / float64(k.Executed) * 100
	}
	return k
}

// ApplyPlannedTotals back-fills Not Executed counts for platforms whose
// observed record count falls short of a configured planned total. This
// models report formats that omit not-executed cases entirely. It is an
// explicit, opt-in correction: it never runs implicitly and never reduces
// counts.
func ApplyPlannedTotals(records []record.TestRecord, planned map[string]int) []record.TestRecord {
	if len(planned) == 0 {
		return records
	}
	observed := make(map[string]int)
	for _, r := range records {
		observed[r.Platform]++
	}

	out := append([]record.TestRecord(nil), records...)
	platforms := make([]string, 0, len(planned))
	for p := range planned {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	for _, platform := range platforms {
		missing := planned[platform] - observed[platform]
		for i := 0; i < missing; i++ {
			out = append(out, record.TestRecord{
				Platform:   platform,
				StoryID:    record.NotIdentified,
				StoryTitle: record.NotIdentified,
				Status:     record.StatusNotExecuted,
			})
		}
	}
	return out
}

// SortedGroups returns the group keys in a stable order (platform, story,
// status) with their counts, for deterministic tabular output.
type GroupCount struct {
	Key   GroupKey
	Count int
}

// SortedGroups flattens Groups for rendering.
func (r *Result) SortedGroups() []GroupCount {
	out := make([]GroupCount, 0, len(r.Groups))
	for k, n := range r.Groups {
		out = append(out, GroupCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key, out[j].Key
		if a.Platform != b.Platform {
			return a.Platform < b.Platform
		}
		if a.StoryID != b.StoryID {
			return a.StoryID < b.StoryID
		}
		if a.StoryTitle != b.StoryTitle {
			return a.StoryTitle < b.StoryTitle
		}
		return a.Status < b.Status
	})
	return out
}

// SortedStatuses returns the status keys in a stable order for rendering.
func (r *Result) SortedStatuses() []record.Status {
	out := make([]record.Status, 0, len(r.StatusCounts))
	for s := range r.StatusCounts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
