package decode

import (
	"strings"
	"testing"
)

func TestBytes_UTF8PassThrough(t *testing.T) {
	in := "Resultado da Execução: Passou"
	got, err := Bytes([]byte(in))
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if got != in {
		t.Errorf("Bytes() = %q, want %q", got, in)
	}
}

func TestBytes_Latin1Fallback(t *testing.T) {
	// "Execução" encoded in ISO 8859-1: ç=0xE7, ã=0xE3.
	in := []byte{'E', 'x', 'e', 'c', 'u', 0xE7, 0xE3, 'o'}
	got, err := Bytes(in)
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if got != "Execução" {
		t.Errorf("Bytes() = %q, want %q", got, "Execução")
	}
}

func TestLines_TrimmedAndIndexStable(t *testing.T) {
	in := "  first  \n\n\tsecond\t\nthird"
	got := Lines(in)
	want := []string{"first", "", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("Lines() returned %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLines_CRLF(t *testing.T) {
	got := Lines("a\r\nb\r\nc")
	if len(got) != 3 || got[1] != "b" {
		t.Errorf("Lines() = %v, want [a b c]", got)
	}
}

func TestLines_BlankLinesRetained(t *testing.T) {
	got := Lines(strings.Repeat("\n", 3))
	if len(got) != 4 {
		t.Errorf("expected 4 entries for 3 newlines, got %d", len(got))
	}
	for i, l := range got {
		if l != "" {
			t.Errorf("line %d = %q, want empty", i, l)
		}
	}
}
