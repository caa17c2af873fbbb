package json

// Three fixed 256-entry tables, precomputed once, that replace branchy
// conditionals in the parser and serializer hot loops. All are indexed by
// the unsigned byte value, so there is no signed/unsigned pitfall the way
// there can be on platforms where char is signed.
var (
	// isWhitespace[b] is true only for SPACE, TAB, CR, LF: the four bytes
	// the JSON grammar treats as insignificant whitespace.
	isWhitespace [256]bool

	// parsedEscape[b] is nonzero only for the bytes that may legally
	// follow a backslash in a JSON string (", \, /, b, f, n, r, t); its
	// value is the byte that escape decodes to.
	parsedEscape [256]byte

	// serializedEscape[b] is nonzero only for raw bytes that need a
	// backslash escape on output (", \, and the five two-character
	// control escapes); its value is the letter to emit after the
	// backslash. Control bytes in 0x00..0x1F not listed here still need
	// escaping, just not via a two-character form — see needsUnicodeEscape.
	serializedEscape [256]byte
)

func init() {
	isWhitespace[' '] = true
	isWhitespace['\t'] = true
	isWhitespace['\r'] = true
	isWhitespace['\n'] = true

	parsedEscape['"'] = '"'
	parsedEscape['\\'] = '\\'
	parsedEscape['/'] = '/'
	parsedEscape['b'] = '\b'
	parsedEscape['f'] = '\f'
	parsedEscape['n'] = '\n'
	parsedEscape['r'] = '\r'
	parsedEscape['t'] = '\t'

	serializedEscape['"'] = '"'
	serializedEscape['\\'] = '\\'
	serializedEscape['\b'] = 'b'
	serializedEscape['\f'] = 'f'
	serializedEscape['\n'] = 'n'
	serializedEscape['\r'] = 'r'
	serializedEscape['\t'] = 't'
}

// needsUnicodeEscape reports whether b is a control character that must be
// escaped but has no two-character form, and so must be emitted as
// \u00XX. These are exactly the bytes in 0x00..0x1F that serializedEscape
// does not already cover.
func needsUnicodeEscape(b byte) bool {
	return b < 0x20 && serializedEscape[b] == 0
}
