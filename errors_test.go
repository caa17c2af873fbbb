package json

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrorUnwrap(t *testing.T) {
	_, err := ParseString(`{"a": tru}`)
	if err == nil {
		t.Fatal("expected an error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a *ParseError, got %T", err)
	}
	if !errors.Is(pe, ErrUnexpectedByte) {
		t.Errorf("expected ErrUnexpectedByte, got %v", pe.Kind)
	}
	if pe.Line != 1 {
		t.Errorf("expected line 1, got %d", pe.Line)
	}
}

func TestParseErrorLineTracking(t *testing.T) {
	input := "{\n  \"a\": 1,\n  \"b\": tru\n}"
	_, err := ParseString(input)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a *ParseError, got %T", err)
	}
	if pe.Line != 3 {
		t.Errorf("expected line 3, got %d", pe.Line)
	}
}

func TestWrongKindAccessorsErrorIs(t *testing.T) {
	v := NewString("x")
	if _, err := v.AsNumber(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("expected ErrWrongKind, got %v", err)
	}
	if _, err := v.AsBool(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("expected ErrWrongKind, got %v", err)
	}
	if _, err := v.AsArray(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("expected ErrWrongKind, got %v", err)
	}
	if _, err := v.AsObject(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("expected ErrWrongKind, got %v", err)
	}
}

func TestFileAccessError(t *testing.T) {
	_, err := ParseFile("/nonexistent/path/does/not/exist.json")
	if !errors.Is(err, ErrFileAccess) {
		t.Errorf("expected ErrFileAccess, got %v", err)
	}
}

func TestExcerptWindowsLongLines(t *testing.T) {
	padding := strings.Repeat("a", 100)
	input := `{"` + padding + `": tru}`
	_, err := ParseString(input)
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if len(msg) > len(input)+200 {
		t.Errorf("expected the diagnostic to window the excerpt, got a %d-byte message", len(msg))
	}
}
