// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

// Package parser extracts normalized test records from report exports.
//
// Each source kind (plain text, TestLink HTML, TestLink XML) has its own
// Parser registered here. Parsing is a single forward pass over the document:
// errors never propagate past this boundary except for unreadable input —
// a document with no recognizable structure yields an empty result plus a
// warning, not an error.
package parser

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/testlens/testlens/internal/record"
)

// Parser extracts test records from the raw bytes of one report document.
type Parser interface {
	// Kind returns the source kind this parser handles.
	Kind() record.SourceKind

	// Parse runs a single pass over the document and returns the ordered
	// records. It returns an error only for unreadable input; unrecognized
	// structure degrades to an empty result with a warning attached.
	Parse(data []byte) (*record.ParseResult, error)
}

var (
	mu       sync.RWMutex
	registry = make(map[record.SourceKind]Parser)
)

// Register adds a parser to the global registry.
// It panics if a parser for the same kind is already registered.
func Register(p Parser) {
	mu.Lock()
	defer mu.Unlock()
	kind := p.Kind()
	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("parser already registered: %s", kind))
	}
	registry[kind] = p
}

// Get returns the parser for the given kind, or an error naming the kinds
// that are available.
func Get(kind record.SourceKind) (Parser, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("parser: unknown source kind %q (available: text, html, xml)", kind)
	}
	return p, nil
}

// KindForPath infers the source kind from a file extension. PDF and DOC
// exports are handled by their textual representations: a .pdf here is text
// already extracted upstream, and .doc/.docx exports from the test-management
// tool are HTML documents under the hood.
func KindForPath(path string) (record.SourceKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".pdf":
		return record.KindText, nil
	case ".html", ".htm", ".doc", ".docx":
		return record.KindHTML, nil
	case ".xml":
		return record.KindXML, nil
	}
	return "", fmt.Errorf("parser: cannot infer source kind from %q; pass --kind", filepath.Base(path))
}

// noStructureWarning is attached to results when a pass finds nothing.
const noStructureWarning = "no test records recognized; check that the file follows the expected report format"
