// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package parser

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/testlens/testlens/internal/decode"
	"github.com/testlens/testlens/internal/record"
)

func init() {
	Register(&HTMLParser{})
}

// reStoryCode extracts a story identifier and trailing title from suite names
// that carry the bare code ("ECPU-213 Incluir informações...") instead of the
// full "Test Suite :" header form.
var reStoryCode = regexp.MustCompile(`([A-Z]+-\d+)\s*:?\s*(.*)`)

// storyHeaderPrefix marks suite headings in TestLink HTML reports.
const storyHeaderPrefix = "Test Suite"

// HTMLParser handles TestLink-style HTML execution reports, which also covers
// DOC/DOCX report exports (they are HTML documents under the hood).
//
// Linkage is structural rather than line-oriented: each <table class="tc"> is
// one test case, the nearest preceding heading is its suite context, and the
// "Execution Result" row inside the table supplies the status — the table
// itself is the lookahead window.
type HTMLParser struct{}

// Compile-time interface check.
var _ Parser = (*HTMLParser)(nil)

// Kind returns the source kind handled by this parser.
func (p *HTMLParser) Kind() record.SourceKind { return record.KindHTML }

// Parse walks the document tree in order, updating platform/suite cursors
// from headings and emitting one record per test-case table.
func (p *HTMLParser) Parse(data []byte) (*record.ParseResult, error) {
	text, err := decode.Bytes(data)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	result := &record.ParseResult{Kind: record.KindHTML}
	cur := newCursor()
	walkHTML(doc, &cur, result)

	if result.Empty() {
		result.Warnings = append(result.Warnings, noStructureWarning)
	}
	return result, nil
}

// walkHTML visits nodes in document order. Headings and paragraphs update the
// cursors; test-case tables emit records and are not descended into again.
func walkHTML(n *html.Node, cur *cursor, result *record.ParseResult) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h1", "h2", "h3", "h4", "p":
			updateCursor(nodeText(n), cur)
		case "table":
			if hasClass(n, "tc") {
				result.Records = append(result.Records, parseCaseTable(n, cur))
				return // the table subtree is fully consumed
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, cur, result)
	}
}

// updateCursor applies the platform and story recognizers to heading or
// paragraph text. Most-recent-wins, same as the line-oriented tracker.
func updateCursor(text string, cur *cursor) {
	if m := rePlatform.FindStringSubmatch(text); m != nil {
		cur.platform = trim(m[1])
		return
	}
	if m := reStory.FindStringSubmatch(text); m != nil {
		cur.storyID = trim(m[1])
		cur.storyTitle = trim(m[2])
		if cur.storyTitle == "" {
			cur.storyTitle = record.NotIdentified
		}
		return
	}
	// Suite headings without an identifier keep the remainder as the title.
	if strings.Contains(text, storyHeaderPrefix) {
		rest := text[strings.Index(text, storyHeaderPrefix)+len(storyHeaderPrefix):]
		rest = trim(strings.TrimPrefix(trim(rest), ":"))
		if rest != "" {
			applySuiteName(rest, cur)
		}
	}
}

// applySuiteName splits a bare suite name ("ABC-123 Some title") into the
// story cursor fields, falling back to using the whole name as the title.
func applySuiteName(name string, cur *cursor) {
	if m := reStoryCode.FindStringSubmatch(name); m != nil {
		cur.storyID = trim(m[1])
		if t := trim(m[2]); t != "" {
			cur.storyTitle = t
		} else {
			cur.storyTitle = record.NotIdentified
		}
		return
	}
	cur.storyID = record.NotIdentified
	cur.storyTitle = name
}

// parseCaseTable extracts one record from a <table class="tc"> block.
// The <th> carries the case header; the "Execution Result" row carries the
// status (bold cell preferred, matching the report markup); "Comments" or
// "Notes" rows carry the comment.
func parseCaseTable(table *html.Node, cur *cursor) record.TestRecord {
	rec := record.TestRecord{
		Platform:   cur.platform,
		StoryID:    cur.storyID,
		StoryTitle: cur.storyTitle,
		Status:     record.StatusNotExecuted,
	}

	if th := findElement(table, "th"); th != nil {
		header := trim(nodeText(th))
		if m := reCase.FindStringSubmatch(header); m != nil {
			rec.TestCaseID = trim(m[1])
			rec.TestCaseName = trim(m[2])
		} else if m := reStoryCode.FindStringSubmatch(header); m != nil {
			rec.TestCaseID = trim(m[1])
			rec.TestCaseName = trim(m[2])
		} else {
			rec.TestCaseName = header
		}
	}

	for _, row := range findElements(table, "tr") {
		cells := findElements(row, "td")
		if len(cells) == 0 {
			continue
		}
		label := nodeText(cells[0])
		value := ""
		if len(cells) > 1 {
			value = trim(nodeText(cells[len(cells)-1]))
		}
		switch {
		case strings.Contains(label, "Execution Result"):
			if b := findElement(cells[len(cells)-1], "b"); b != nil {
				value = trim(nodeText(b))
			}
			if value != "" {
				rec.Status = record.NormalizeStatus(value)
			}
		case strings.Contains(label, "Comments") || strings.Contains(label, "Notes"):
			if rec.Comment == "" && value != "" {
				rec.Comment = trim(reCommentURL.ReplaceAllString(value, ""))
			}
		}
	}
	return rec
}

// nodeText concatenates all text nodes under n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// findElement returns the first descendant element with the given tag.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findElements returns all descendant elements with the given tag, in
// document order.
func findElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			out = append(out, node)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return out
}

// hasClass reports whether the node's class attribute contains the given
// class name.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}
