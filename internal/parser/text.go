// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package parser

import (
	"regexp"
	"strings"

	"github.com/testlens/testlens/internal/decode"
	"github.com/testlens/testlens/internal/record"
)

func init() {
	Register(&TextParser{})
}

// lookaheadWindow is how many lines after a test-case header are scanned for
// the first status and comment match. Extracted PDF text often interleaves
// noise between a case header and its result row, so strict adjacency is too
// brittle; ten lines matches the widest gap observed in real exports.
const lookaheadWindow = 10

// Line recognizers, tried in fixed priority order. The first match wins and
// the line is consumed; no recognizer re-tries a line a higher-priority one
// already claimed.
var (
	rePlatform = regexp.MustCompile(`(?i)(?:\d+\s*\.\s*)?Platform\s*:\s*(.+)`)
	reStory    = regexp.MustCompile(`Test Suite\s*:\s*([A-Z]+-\d+)\s*(.*)`)
	reCase     = regexp.MustCompile(`Test Case\s*([A-Z]+-\d+)\s*:\s*(.*)`)
	reResult   = regexp.MustCompile(`Execution Result\s*:\s*([\p{L}\d_]+)`)
	reState    = regexp.MustCompile(`Execution State\s*:\s*([\p{L}\d_]+)`)
	reComment  = regexp.MustCompile(`Comments\s*:?\s*(.*)`)

	// Comments are truncated at the first URL; exports append a tool
	// permalink after the free text.
	reCommentURL = regexp.MustCompile(`\s*https?://\S.*$`)
)

// cursor carries the running platform/story context across lines.
// Most-recent-wins: a matching header updates the cursor in place and the
// value persists until the next header or end of input.
type cursor struct {
	platform   string
	storyID    string
	storyTitle string
}

func newCursor() cursor {
	return cursor{
		platform:   record.NotIdentified,
		storyID:    record.NotIdentified,
		storyTitle: record.NotIdentified,
	}
}

// pending is a test-case record awaiting its status within the lookahead
// window. It is flushed — never dropped — at the next header, at window
// exhaustion, or at end of input; a record flushed without a status line is
// emitted as Not Executed.
type pending struct {
	rec        record.TestRecord
	windowEnd  int // last line index still inside the lookahead window
	haveStatus bool
}

// TextParser handles plain-text report exports (PDF-extracted text).
type TextParser struct{}

// Compile-time interface check.
var _ Parser = (*TextParser)(nil)

// Kind returns the source kind handled by this parser.
func (p *TextParser) Kind() record.SourceKind { return record.KindText }

// Parse runs the single forward pass described by the recognizer table:
// headers update the cursor, test-case headers open a pending record, and
// status/comment lines fill the first empty slot of the pending record or,
// with no pending record, emit a story-level record directly.
func (p *TextParser) Parse(data []byte) (*record.ParseResult, error) {
	text, err := decode.Bytes(data)
	if err != nil {
		return nil, err
	}
	lines := decode.Lines(text)

	result := &record.ParseResult{Kind: record.KindText}
	cur := newCursor()
	var inFlight *pending

	flush := func() {
		if inFlight == nil {
			return
		}
		result.Records = append(result.Records, inFlight.rec)
		inFlight = nil
	}

	for i, line := range lines {
		if inFlight != nil && i > inFlight.windowEnd {
			flush()
		}

		switch {
		case rePlatform.MatchString(line):
			flush()
			cur.platform = capture(rePlatform, line, 1)

		case reStory.MatchString(line):
			flush()
			m := reStory.FindStringSubmatch(line)
			cur.storyID = trim(m[1])
			cur.storyTitle = trim(m[2])
			if cur.storyTitle == "" {
				cur.storyTitle = record.NotIdentified
			}

		case reCase.MatchString(line):
			flush()
			m := reCase.FindStringSubmatch(line)
			inFlight = &pending{
				rec: record.TestRecord{
					Platform:     cur.platform,
					StoryID:      cur.storyID,
					StoryTitle:   cur.storyTitle,
					TestCaseID:   trim(m[1]),
					TestCaseName: trim(m[2]),
					Status:       record.StatusNotExecuted,
				},
				windowEnd: i + lookaheadWindow,
			}

		case reResult.MatchString(line) || reState.MatchString(line):
			token := capture(reResult, line, 1)
			if token == "" {
				token = capture(reState, line, 1)
			}
			status := record.NormalizeStatus(token)
			if inFlight != nil {
				if !inFlight.haveStatus {
					inFlight.rec.Status = status
					inFlight.haveStatus = true
				}
				continue
			}
			// Story-level source: no test-case headers, one record per
			// status line under the current cursor.
			result.Records = append(result.Records, record.TestRecord{
				Platform:   cur.platform,
				StoryID:    cur.storyID,
				StoryTitle: cur.storyTitle,
				Status:     status,
			})

		case reComment.MatchString(line):
			if inFlight != nil && inFlight.rec.Comment == "" {
				c := capture(reComment, line, 1)
				inFlight.rec.Comment = trim(reCommentURL.ReplaceAllString(c, ""))
			}
		}
	}
	flush()

	if result.Empty() {
		result.Warnings = append(result.Warnings, noStructureWarning)
	}
	return result, nil
}

func capture(re *regexp.Regexp, line string, group int) string {
	m := re.FindStringSubmatch(line)
	if m == nil || group >= len(m) {
		return ""
	}
	return trim(m[group])
}

func trim(s string) string { return strings.TrimSpace(s) }
