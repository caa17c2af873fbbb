package json

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Format selects the layout Serialize produces.
type Format int

const (
	// Minimized emits no whitespace between tokens.
	Minimized Format = iota
	// Pretty indents 4 spaces per nesting level and separates entries
	// with newlines.
	Pretty
)

const indentWidth = "    "

// Serialize encodes v as JSON text in the given format. The result always
// parses back to a structurally equal Value (Parse(Serialize(v, f))
// round-trips), except for non-finite numbers, which are emitted as
// quoted strings since JSON has no token for NaN or +-Inf.
func Serialize(v *Value, format Format) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v, format, 0, false)
	return buf.Bytes()
}

// writeValue appends v's JSON encoding to buf at the given nesting depth.
// skipIndent suppresses this call's own leading indent, used when the
// caller (an object, writing a key) has already placed the indentation
// that would otherwise precede the value. The pretty and minimized paths
// share this one body, branching only on "format == Pretty" at each
// layout-only decision, rather than being duplicated.
func writeValue(buf *bytes.Buffer, v *Value, format Format, depth int, skipIndent bool) {
	if format == Pretty && !skipIndent {
		writeIndent(buf, depth)
	}
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.bVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		writeNumber(buf, v.nVal)
	case KindString:
		writeString(buf, v.sVal)
	case KindArray:
		writeArray(buf, v.aVal, format, depth)
	case KindObject:
		writeObject(buf, v.oVal, format, depth)
	}
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteString(indentWidth)
	}
}

func writeArray(buf *bytes.Buffer, elems []*Value, format Format, depth int) {
	if len(elems) == 0 {
		buf.WriteString("[]")
		return
	}
	buf.WriteByte('[')
	if format == Pretty {
		buf.WriteByte('\n')
	}
	for i, elem := range elems {
		writeValue(buf, elem, format, depth+1, false)
		if i < len(elems)-1 {
			buf.WriteByte(',')
		}
		if format == Pretty {
			buf.WriteByte('\n')
		}
	}
	if format == Pretty {
		writeIndent(buf, depth)
	}
	buf.WriteByte(']')
}

func writeObject(buf *bytes.Buffer, obj *Object, format Format, depth int) {
	if obj.Len() == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteByte('{')
	if format == Pretty {
		buf.WriteByte('\n')
	}
	n := obj.Len()
	i := 0
	obj.Range(func(key string, val *Value) bool {
		if format == Pretty {
			writeIndent(buf, depth+1)
		}
		writeString(buf, key)
		if format == Pretty {
			buf.WriteString(": ")
		} else {
			buf.WriteByte(':')
		}
		// The indent before the value has already been placed by the
		// key (or is absent in minimized mode), so skip it here.
		writeValue(buf, val, format, depth+1, true)
		if i < n-1 {
			buf.WriteByte(',')
		}
		if format == Pretty {
			buf.WriteByte('\n')
		}
		i++
		return true
	})
	if format == Pretty {
		writeIndent(buf, depth)
	}
	buf.WriteByte('}')
}

// writeString quotes s and escapes it, flushing unescaped runs in bulk
// rather than byte at a time. Forward slash is never escaped (it is
// allowed unescaped by the grammar). Bytes in 0x00..0x1F that have no
// two-character escape form (i.e. not \b \f \n \r \t) are emitted as
// \u00XX.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	b := []byte(s)
	chunkStart := 0
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case serializedEscape[c] != 0:
			buf.Write(b[chunkStart:i])
			buf.WriteByte('\\')
			buf.WriteByte(serializedEscape[c])
			chunkStart = i + 1
		case needsUnicodeEscape(c):
			buf.Write(b[chunkStart:i])
			fmt.Fprintf(buf, `\u%04x`, c)
			chunkStart = i + 1
		}
	}
	buf.Write(b[chunkStart:])
	buf.WriteByte('"')
}

// writeNumber emits f's shortest round-trip decimal representation via
// strconv.FormatFloat. Non-finite values are wrapped in quotes: JSON has
// no literal for NaN or +-Inf, so this keeps the output parseable at the
// cost of round-trip symmetry for those values (they come back as
// strings, not numbers).
func writeNumber(buf *bytes.Buffer, f float64) {
	switch {
	case math.IsNaN(f):
		buf.WriteString(`"nan"`)
	case math.IsInf(f, 1):
		buf.WriteString(`"inf"`)
	case math.IsInf(f, -1):
		buf.WriteString(`"-inf"`)
	default:
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
}
