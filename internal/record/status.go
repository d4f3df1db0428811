// Copyright 2026 The Testlens Authors
// SPDX-License-Identifier: MIT

package record

import "strings"

// Status is a test execution outcome. Canonical values are the four constants
// below; anything the normalizer does not recognize is carried verbatim so
// the aggregator keeps it as its own bucket instead of folding it into a
// canonical one.
type Status string

// Canonical status values.
const (
	StatusPassed      Status = "Passed"
	StatusFailed      Status = "Failed"
	StatusBlocked     Status = "Blocked"
	StatusNotExecuted Status = "Not Executed"
	StatusUnknown     Status = "Unknown"
)

// Canonical reports whether s is one of the closed canonical values.
func (s Status) Canonical() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusBlocked, StatusNotExecuted, StatusUnknown:
		return true
	}
	return false
}

// Executed reports whether s counts toward the executed-cases KPI.
func (s Status) Executed() bool {
	return s != StatusNotExecuted
}

// NormalizeStatus canonicalizes a free-text status token. The source reports
// mix Portuguese and English tokens; "Falhou" and "Falhado" are synonyms and
// both map to Failed. Substring matching is deliberate: extracted PDF text
// sometimes glues punctuation or markup fragments onto the token.
func NormalizeStatus(token string) Status {
	t := strings.ToLower(strings.TrimSpace(token))
	switch {
	case t == "":
		return StatusNotExecuted
	case strings.Contains(t, "passou") || strings.Contains(t, "passed"):
		return StatusPassed
	case strings.Contains(t, "falhou") || strings.Contains(t, "falhado") || strings.Contains(t, "failed"):
		return StatusFailed
	case strings.Contains(t, "bloqueado") || strings.Contains(t, "blocked"):
		return StatusBlocked
	case strings.Contains(t, "não executado") || strings.Contains(t, "nao executado") || strings.Contains(t, "not executed"):
		return StatusNotExecuted
	case t == "não" || t == "nao" || t == "not":
		// Single-word status capture clips "Não Executado" to its first word.
		return StatusNotExecuted
	}
	return Status(strings.TrimSpace(token))
}

// StatusFromCode maps the single-character execution codes used by TestLink
// XML exports. Unknown codes map to Unknown rather than being dropped.
func StatusFromCode(code string) Status {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "p":
		return StatusPassed
	case "f":
		return StatusFailed
	case "b":
		return StatusBlocked
	case "n", "":
		return StatusNotExecuted
	}
	return StatusUnknown
}
