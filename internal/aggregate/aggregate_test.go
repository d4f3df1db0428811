package aggregate

import (
	"math"
	"testing"

	"github.com/testlens/testlens/internal/record"
)

func rec(platform, story, status string) record.TestRecord {
	return record.TestRecord{
		Platform:   platform,
		StoryID:    story,
		StoryTitle: story + " title",
		Status:     record.NormalizeStatus(status),
	}
}

func TestCompute_KPIs(t *testing.T) {
	records := []record.TestRecord{
		rec("Web", "A-1", "Passou"),
		rec("Web", "A-1", "Falhou"),
		rec("Web", "A-2", "Bloqueado"),
		rec("Android", "A-1", "Não Executado"),
	}
	res := Compute(records)

	k := res.KPIs
	if k.Total != 4 || k.Passed != 1 || k.Executed != 3 {
		t.Errorf("KPIs = %+v, want total 4, passed 1, executed 3", k)
	}
	if math.Abs(k.ExecutionPct-75.0) > 1e-9 {
		t.Errorf("ExecutionPct = %v, want 75", k.ExecutionPct)
	}
	want := 1.0 / 3.0 * 100
	if math.Abs(k.SuccessPct-want) > 1e-9 {
		t.Errorf("SuccessPct = %v, want %v", k.SuccessPct, want)
	}
}

func TestCompute_SynonymsNeverSplit(t *testing.T) {
	records := []record.TestRecord{
		rec("", "S-1", "Passou"),
		rec("", "S-1", "Falhou"),
		rec("", "S-1", "Falhado"),
		rec("", "S-1", "Bloqueado"),
	}
	res := Compute(records)

	if res.StatusCounts[record.StatusFailed] != 2 {
		t.Errorf("Failed count = %d, want 2 (Falhou+Falhado merged)", res.StatusCounts[record.StatusFailed])
	}
	if res.StatusCounts[record.StatusPassed] != 1 || res.StatusCounts[record.StatusBlocked] != 1 {
		t.Errorf("StatusCounts = %v, want Passed:1 Blocked:1", res.StatusCounts)
	}
	if len(res.StatusCounts) != 3 {
		t.Errorf("expected 3 distinct statuses, got %v", res.StatusCounts)
	}
}

func TestCompute_EmptyInput(t *testing.T) {
	res := Compute(nil)
	if len(res.StatusCounts) != 0 || len(res.Groups) != 0 {
		t.Errorf("expected empty maps, got %+v", res)
	}
	k := res.KPIs
	if k.Total != 0 || k.ExecutionPct != 0 || k.SuccessPct != 0 {
		t.Errorf("KPIs = %+v, want all zero with no division error", k)
	}
}

func TestCompute_SuccessPctZeroWhenNothingExecuted(t *testing.T) {
	res := Compute([]record.TestRecord{rec("", "S-1", "Não Executado")})
	if res.KPIs.SuccessPct != 0 {
		t.Errorf("SuccessPct = %v, want 0 when executed = 0", res.KPIs.SuccessPct)
	}
	if res.KPIs.ExecutionPct != 0 {
		t.Errorf("ExecutionPct = %v, want 0", res.KPIs.ExecutionPct)
	}
}

func TestCompute_UnknownStatusKeepsOwnBucket(t *testing.T) {
	res := Compute([]record.TestRecord{
		rec("", "S-1", "Em Progresso"),
		rec("", "S-1", "Passou"),
	})
	if res.StatusCounts[record.Status("Em Progresso")] != 1 {
		t.Errorf("unknown status should keep its own bucket, got %v", res.StatusCounts)
	}
}

func TestCompute_Grouping(t *testing.T) {
	records := []record.TestRecord{
		rec("Web", "A-1", "Passou"),
		rec("Web", "A-1", "Passou"),
		rec("iOS", "A-1", "Passou"),
	}
	res := Compute(records)

	key := GroupKey{Platform: "Web", StoryID: "A-1", StoryTitle: "A-1 title", Status: record.StatusPassed}
	if res.Groups[key] != 2 {
		t.Errorf("Groups[%+v] = %d, want 2", key, res.Groups[key])
	}
	if len(res.Groups) != 2 {
		t.Errorf("expected 2 groups, got %d", len(res.Groups))
	}
}

func TestSortedGroups_Deterministic(t *testing.T) {
	records := []record.TestRecord{
		rec("Web", "B-2", "Passou"),
		rec("Android", "A-1", "Falhou"),
		rec("Web", "A-1", "Passou"),
	}
	res := Compute(records)
	groups := res.SortedGroups()
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Key.Platform != "Android" {
		t.Errorf("first group platform = %q, want Android", groups[0].Key.Platform)
	}
	if groups[1].Key.StoryID != "A-1" || groups[2].Key.StoryID != "B-2" {
		t.Errorf("groups not sorted by story within platform: %+v", groups)
	}
}

func TestApplyPlannedTotals(t *testing.T) {
	records := []record.TestRecord{
		rec("Web", "A-1", "Passou"),
		rec("Web", "A-1", "Falhou"),
	}
	out := ApplyPlannedTotals(records, map[string]int{"Web": 5, "Android": 2})
	if len(out) != 7 {
		t.Fatalf("expected 7 records (2 observed + 3 + 2 back-filled), got %d", len(out))
	}

	res := Compute(out)
	if res.StatusCounts[record.StatusNotExecuted] != 5 {
		t.Errorf("Not Executed = %d, want 5", res.StatusCounts[record.StatusNotExecuted])
	}
}

func TestApplyPlannedTotals_NeverReduces(t *testing.T) {
	records := []record.TestRecord{
		rec("Web", "A-1", "Passou"),
		rec("Web", "A-1", "Passou"),
		rec("Web", "A-1", "Passou"),
	}
	out := ApplyPlannedTotals(records, map[string]int{"Web": 2})
	if len(out) != 3 {
		t.Errorf("expected 3 records unchanged (planned below observed), got %d", len(out))
	}
}

func TestApplyPlannedTotals_NoConfigIsNoop(t *testing.T) {
	records := []record.TestRecord{rec("Web", "A-1", "Passou")}
	out := ApplyPlannedTotals(records, nil)
	if len(out) != 1 {
		t.Errorf("expected records unchanged, got %d", len(out))
	}
}

func TestDefectImpacts(t *testing.T) {
	records := []record.TestRecord{
		{Status: record.StatusFailed, Comment: "bug PH-177 checkout broken"},
		{Status: record.StatusBlocked, Comment: "blocked by issue PH-177"},
		{Status: record.StatusFailed, Comment: "defect: 1234"},
		{Status: record.StatusPassed, Comment: "bug PH-999 mentioned but passed"},
	}
	impacts := DefectImpacts(records)
	if len(impacts) != 2 {
		t.Fatalf("expected 2 defects, got %+v", impacts)
	}
	if impacts[0].ID != "PH-177" || impacts[0].Cases != 2 {
		t.Errorf("top defect = %+v, want PH-177 with 2 cases", impacts[0])
	}
	if impacts[1].ID != "1234" || impacts[1].Cases != 1 {
		t.Errorf("second defect = %+v, want 1234 with 1 case", impacts[1])
	}
}

func TestDefectImpacts_NoneFound(t *testing.T) {
	if got := DefectImpacts([]record.TestRecord{{Status: record.StatusFailed, Comment: "flaky"}}); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
