// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/testlens/testlens/internal/decode"
	"github.com/testlens/testlens/internal/record"
)

func init() {
	Register(&XMLParser{})
}

// xmlSuite mirrors the nested testsuite structure of a TestLink XML export.
// Suites nest arbitrarily deep; the innermost suite name is the story context
// for the cases it contains.
type xmlSuite struct {
	Name   string     `xml:"name,attr"`
	Suites []xmlSuite `xml:"testsuite"`
	Cases  []xmlCase  `xml:"testcase"`
}

type xmlCase struct {
	Name      string `xml:"name,attr"`
	Execution struct {
		Status string `xml:"status"`
		Notes  string `xml:"notes"`
	} `xml:"execution"`
}

// XMLParser handles TestLink XML exports. The schema is exact: status is a
// single coded character (p/f/b/n), so no lookahead heuristics apply.
type XMLParser struct{}

// Compile-time interface check.
var _ Parser = (*XMLParser)(nil)

// Kind returns the source kind handled by this parser.
func (p *XMLParser) Kind() record.SourceKind { return record.KindXML }

// Parse unmarshals the export and emits one record per testcase, carrying the
// enclosing suite name as story context. XML exports have no platform
// dimension, so records keep the sentinel platform.
func (p *XMLParser) Parse(data []byte) (*record.ParseResult, error) {
	text, err := decode.Bytes(data)
	if err != nil {
		return nil, err
	}

	// decode.Bytes has already transcoded everything to UTF-8, but Latin-1
	// exports still carry their original encoding declaration, which would
	// otherwise make the decoder reject the document.
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var root xmlSuite
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parser: invalid xml: %w", err)
	}

	result := &record.ParseResult{Kind: record.KindXML}
	cur := newCursor()
	collectSuite(root, cur, result)

	if result.Empty() {
		result.Warnings = append(result.Warnings, noStructureWarning)
	}
	return result, nil
}

// collectSuite walks the suite tree depth-first. Each suite level rebinds the
// story cursor for its own cases; sibling suites do not leak context into
// each other.
func collectSuite(s xmlSuite, cur cursor, result *record.ParseResult) {
	if name := trim(s.Name); name != "" {
		applySuiteName(name, &cur)
	}
	for _, c := range s.Cases {
		rec := record.TestRecord{
			Platform:     cur.platform,
			StoryID:      cur.storyID,
			StoryTitle:   cur.storyTitle,
			TestCaseName: trim(c.Name),
			Status:       record.StatusFromCode(c.Execution.Status),
			Comment:      trim(c.Execution.Notes),
		}
		if m := reStoryCode.FindStringSubmatch(rec.TestCaseName); m != nil {
			rec.TestCaseID = trim(m[1])
			rec.TestCaseName = trim(m[2])
		}
		result.Records = append(result.Records, rec)
	}
	for _, child := range s.Suites {
		collectSuite(child, cur, result)
	}
}
