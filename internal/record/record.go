// Package record defines the core domain types for testlens.
package record

// NotIdentified is the sentinel used for platform and story fields when the
// source document never produced a matching header before a record was
// emitted.
const NotIdentified = "Not Identified"

// TestRecord represents a single parsed test-case observation.
type TestRecord struct {
	Platform     string `json:"platform"`                 // Execution target (Web, Android, ...), or sentinel.
	StoryID      string `json:"story_id"`                 // Suite/story code, e.g. "ECPU-213", or sentinel.
	StoryTitle   string `json:"story_title"`              // Trailing title text from the story header.
	TestCaseID   string `json:"test_case_id,omitempty"`   // Empty for story-level sources.
	TestCaseName string `json:"test_case_name,omitempty"` // Empty for story-level sources.
	Status       Status `json:"status"`                   // Normalized status, never empty once emitted.
	Comment      string `json:"comment,omitempty"`        // Free text, may embed a defect identifier.
}

// SourceKind identifies the declared input format of a report document.
type SourceKind string

// Source kinds accepted by the parsers. Text covers content already extracted
// from a PDF; HTML also covers DOC/DOCX files saved as HTML.
const (
	KindText SourceKind = "text"
	KindHTML SourceKind = "html"
	KindXML  SourceKind = "xml"
)

// ParseResult holds the ordered records extracted from one document.
type ParseResult struct {
	Kind     SourceKind   `json:"kind"`
	Records  []TestRecord `json:"records"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Empty reports whether no records were extracted. An empty result is a
// degraded outcome, not an error: callers surface a warning and keep going.
func (r *ParseResult) Empty() bool {
	return len(r.Records) == 0
}
