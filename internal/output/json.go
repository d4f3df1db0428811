package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/testlens/testlens/internal/aggregate"
	"github.com/testlens/testlens/internal/record"
)

func init() {
	Register(NewJSONFormatter())
}

// JSONEnvelope wraps records and aggregate with run metadata.
type JSONEnvelope struct {
	Records   []record.TestRecord `json:"records"`
	Groups    []GroupJSON         `json:"grouped_counts"`
	Aggregate *aggregate.Result   `json:"aggregate"`
	Metadata  JSONMetadata        `json:"metadata"`
}

// GroupJSON is the JSON shape of one grouped count (map keys cannot be
// structs in JSON, so groups flatten to a list).
type GroupJSON struct {
	Platform   string        `json:"platform"`
	StoryID    string        `json:"story_id"`
	StoryTitle string        `json:"story_title"`
	Status     record.Status `json:"status"`
	Total      int           `json:"total"`
}

// JSONMetadata describes the parse run that produced the envelope.
type JSONMetadata struct {
	RunID       string            `json:"run_id"`
	Kind        record.SourceKind `json:"kind"`
	TotalCount  int               `json:"total_count"`
	Warnings    []string          `json:"warnings,omitempty"`
	GeneratedAt string            `json:"generated_at"`
}

// JSONFormatter writes the result as a JSON document with a metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is a single line instead of indented.
	Compact bool

	// nowFunc and idFunc are overridable for tests.
	nowFunc func() time.Time
	idFunc  func() string
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string { return "json" }

// Format writes the full envelope to w.
func (f *JSONFormatter) Format(result *record.ParseResult, agg *aggregate.Result, w io.Writer) error {
	records := result.Records
	if records == nil {
		records = []record.TestRecord{}
	}

	groups := make([]GroupJSON, 0, len(agg.Groups))
	for _, g := range agg.SortedGroups() {
		groups = append(groups, GroupJSON{
			Platform:   g.Key.Platform,
			StoryID:    g.Key.StoryID,
			StoryTitle: g.Key.StoryTitle,
			Status:     g.Key.Status,
			Total:      g.Count,
		})
	}

	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}
	runID := uuid.NewString()
	if f.idFunc != nil {
		runID = f.idFunc()
	}

	envelope := JSONEnvelope{
		Records:   records,
		Groups:    groups,
		Aggregate: agg,
		Metadata: JSONMetadata{
			RunID:       runID,
			Kind:        result.Kind,
			TotalCount:  len(records),
			Warnings:    result.Warnings,
			GeneratedAt: now.UTC().Format(time.RFC3339),
		},
	}

	enc := json.NewEncoder(w)
	if !f.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(envelope)
}
