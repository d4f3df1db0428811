// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package aggregate

import (
	"regexp"
	"sort"

	"github.com/testlens/testlens/internal/record"
)

// reDefect matches defect identifiers embedded in record comments, e.g.
// "bug PH-177", "Defect: 1234", "issue #ABC-9".
var reDefect = regexp.MustCompile(`(?i)(?:defect|bug|issue)[\s:#]*([A-Z_]+-\d+|\d+)`)

// DefectImpact counts how many Failed or Blocked cases reference one defect.
type DefectImpact struct {
	ID    string `json:"id"`
	Cases int    `json:"cases"`
}

// DefectImpacts extracts defect identifiers from the comments of Failed and
// Blocked records and counts impacted cases per defect, sorted by impact
// (descending) then ID for determinism.
func DefectImpacts(records []record.TestRecord) []DefectImpact {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Status != record.StatusFailed && r.Status != record.StatusBlocked {
			continue
		}
		for _, m := range reDefect.FindAllStringSubmatch(r.Comment, -1) {
			counts[m[1]]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	out := make([]DefectImpact, 0, len(counts))
	for id, n := range counts {
		out = append(out, DefectImpact{ID: id, Cases: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cases != out[j].Cases {
			return out[i].Cases > out[j].Cases
		}
		return out[i].ID < out[j].ID
	})
	return out
}
