package json

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure category the parser and value API can
// raise. Every failure returned by this package wraps exactly one of
// these, so callers can dispatch with errors.Is.
var (
	// ErrUnexpectedByte: the parser saw a byte not valid for the current
	// production.
	ErrUnexpectedByte = errors.New("unexpected byte")
	// ErrUnexpectedEnd: the buffer was exhausted mid-token, mid-string,
	// mid-escape, mid-literal, or between elements.
	ErrUnexpectedEnd = errors.New("unexpected end of input")
	// ErrBadEscape: an unknown character followed '\', or a malformed
	// \uXXXX escape.
	ErrBadEscape = errors.New("bad escape sequence")
	// ErrBadControlChar: an unescaped U+0000..U+001F appeared inside a
	// string.
	ErrBadControlChar = errors.New("unescaped control character in string")
	// ErrNumberFormat: a numeric token could not be parsed as a double.
	ErrNumberFormat = errors.New("invalid number format")
	// ErrNumberRange: a numeric token is not representable in a double.
	ErrNumberRange = errors.New("number out of representable range")
	// ErrDepthExceeded: the parser nested deeper than the configured
	// recursion limit.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrTrailingData: non-whitespace bytes followed the top-level value.
	ErrTrailingData = errors.New("trailing data after value")
	// ErrFileAccess: the named file could not be opened, read, or
	// written.
	ErrFileAccess = errors.New("file access error")
	// ErrWrongKind: a typed accessor was called on a Value of a
	// different Kind.
	ErrWrongKind = errors.New("wrong value kind")
	// ErrKeyNotFound: a lookup of a missing key via a throwing accessor.
	ErrKeyNotFound = errors.New("key not found")
	// ErrUnsupportedType: From(v) was given a Go value that satisfies
	// none of the conversion categories.
	ErrUnsupportedType = errors.New("unsupported type for conversion")
)

// excerptRadius is how many bytes of source are shown on either side of
// the error position in a formatted diagnostic.
const excerptRadius = 24

// ParseError reports a parse failure together with the cursor position it
// occurred at, so a diagnostic can point at the offending byte.
type ParseError struct {
	// Kind is one of the sentinel errors above; Unwrap returns it.
	Kind error
	// Pos is the 0-indexed byte offset into the parsed buffer.
	Pos int
	// Line and Col are the 1-indexed line and column of Pos.
	Line int
	Col  int
	// Detail, if non-empty, supplements Kind with specifics (e.g. the
	// byte that was unexpected).
	Detail string
	// source is retained only to render the excerpt; it is not part of
	// the error's identity.
	source []byte
}

// Error renders a multi-line diagnostic: the error message, the source
// line it occurred on (windowed to excerptRadius bytes either side), and
// a caret under the offending column.
func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at line %d, column %d", e.message(), e.Line, e.Col)
	if excerpt, caretOffset, ok := e.excerpt(); ok {
		b.WriteByte('\n')
		b.WriteString(excerpt)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", caretOffset))
		b.WriteByte('^')
	}
	return b.String()
}

func (e *ParseError) message() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Detail
}

// Unwrap lets errors.Is(err, ErrUnexpectedByte) etc. work against a
// *ParseError.
func (e *ParseError) Unwrap() error { return e.Kind }

// excerpt returns a single-line window of the source around Pos and the
// column within that window the caret belongs at.
func (e *ParseError) excerpt() (string, int, bool) {
	if len(e.source) == 0 {
		return "", 0, false
	}
	lo := e.Pos - excerptRadius
	if lo < 0 {
		lo = 0
	}
	hi := e.Pos + excerptRadius
	if hi > len(e.source) {
		hi = len(e.source)
	}
	if lo > len(e.source) {
		lo = len(e.source)
	}
	// Clip the window to a single line so the caret lines up: start just
	// past the last newline before Pos, stop at the first newline after.
	for i := e.Pos - 1; i >= lo; i-- {
		if e.source[i] == '\n' {
			lo = i + 1
			break
		}
	}
	window := e.source[lo:hi]
	if i := indexByte(window, '\n'); i >= 0 {
		window = window[:i]
		hi = lo + i
	}
	caret := e.Pos - lo
	if caret < 0 {
		caret = 0
	}
	if caret > len(window) {
		caret = len(window)
	}
	return string(window), caret, true
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// lineCol computes the 1-indexed line and column of byte offset pos
// within buf.
func lineCol(buf []byte, pos int) (line, col int) {
	line, col = 1, 1
	if pos > len(buf) {
		pos = len(buf)
	}
	for _, b := range buf[:pos] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// newParseError builds a *ParseError for kind at pos within buf.
func newParseError(buf []byte, pos int, kind error, detail string) *ParseError {
	line, col := lineCol(buf, pos)
	return &ParseError{
		Kind:   kind,
		Pos:    pos,
		Line:   line,
		Col:    col,
		Detail: detail,
		source: buf,
	}
}
