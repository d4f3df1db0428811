// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

// Package decode turns raw report bytes into text the parsers can consume.
//
// Exports from the test-management tool arrive in two encodings: UTF-8 and
// Latin-1 (older TestLink installs). Decoding tries UTF-8 first and falls
// back to ISO 8859-1, which accepts any byte sequence, so a decode failure
// only occurs on unreadable input upstream of this package.
package decode

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Bytes decodes raw document bytes into a string. Valid UTF-8 passes through
// unchanged; anything else is reinterpreted as ISO 8859-1.
func Bytes(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode: cannot read file: %w", err)
	}
	return string(out), nil
}

// Lines splits decoded text into an ordered sequence of trimmed lines.
// Blank lines are retained as empty strings so the parser's line-relative
// lookahead windows stay index-stable.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	raw := strings.Split(s, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
