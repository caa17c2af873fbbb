// Package json implements a self-contained JSON codec: a parser that turns
// JSON text (per ECMA-404 / RFC 8259) into an in-memory tagged-value tree,
// and a serializer that turns such a tree back into conforming JSON text.
//
// A Value is a discriminated union over six kinds: Null, Bool, Number,
// String, Array, and Object. Objects keep their members in key order and
// support lookup from a borrowed byte slice without allocating.
//
// Parsing is single-pass over a caller-owned byte buffer and guards against
// adversarial nesting depth with a configurable recursion limit. Non-finite
// numbers (NaN, +-Inf) are a deliberate, documented departure from strict
// JSON: since the grammar has no token for them, they serialize as quoted
// strings ("nan", "inf", "-inf") rather than being rejected or silently
// corrupted.
package json
