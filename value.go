package json

import (
	"fmt"
	"math"
)

// Value is a node of the JSON in-memory tree: a tagged union over exactly
// one of six kinds. The zero Value is KindNull. Array elements and Object
// members are held by pointer: NewArray, Append and Object.Set store the
// *Value they are given without copying it, so inserting one *Value in
// two places shares it. Clone gives an independent deep copy.
type Value struct {
	kind Kind
	bVal bool
	nVal float64
	sVal string
	aVal []*Value
	oVal *Object
}

// Null returns a new Null value. Equivalent to new(Value), but reads
// better at call sites that build a tree by hand.
func Null() *Value { return &Value{} }

// NewBool returns a new Bool value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, bVal: b} }

// NewNumber returns a new Number value.
func NewNumber(n float64) *Value { return &Value{kind: KindNumber, nVal: n} }

// NewString returns a new String value.
func NewString(s string) *Value { return &Value{kind: KindString, sVal: s} }

// NewArray returns a new Array value containing the given elements
// in order. The slice is taken by reference; callers that intend to keep
// using it afterwards should pass a copy.
func NewArray(elems ...*Value) *Value {
	return &Value{kind: KindArray, aVal: elems}
}

// NewObjectValue returns a new, empty Object value.
func NewObjectValue() *Value {
	return &Value{kind: KindObject, oVal: NewObject()}
}

// Kind returns which alternative v currently holds.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull, IsBool, IsNumber, IsString, IsArray, IsObject are kind
// predicates; none of them can fail.
func (v *Value) IsNull() bool   { return v.Kind() == KindNull }
func (v *Value) IsBool() bool   { return v.Kind() == KindBool }
func (v *Value) IsNumber() bool { return v.Kind() == KindNumber }
func (v *Value) IsString() bool { return v.Kind() == KindString }
func (v *Value) IsArray() bool  { return v.Kind() == KindArray }
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

func (v *Value) wrongKind(want Kind) error {
	return fmt.Errorf("%w: want %s, have %s", ErrWrongKind, want, v.Kind())
}

// AsBool returns the payload of a Bool value, or ErrWrongKind otherwise.
func (v *Value) AsBool() (bool, error) {
	if !v.IsBool() {
		return false, v.wrongKind(KindBool)
	}
	return v.bVal, nil
}

// AsNumber returns the payload of a Number value, or ErrWrongKind
// otherwise.
func (v *Value) AsNumber() (float64, error) {
	if !v.IsNumber() {
		return 0, v.wrongKind(KindNumber)
	}
	return v.nVal, nil
}

// AsString returns the payload of a String value, or ErrWrongKind
// otherwise.
func (v *Value) AsString() (string, error) {
	if !v.IsString() {
		return "", v.wrongKind(KindString)
	}
	return v.sVal, nil
}

// AsArray returns the element slice of an Array value, or ErrWrongKind
// otherwise. The returned slice aliases v's storage.
func (v *Value) AsArray() ([]*Value, error) {
	if !v.IsArray() {
		return nil, v.wrongKind(KindArray)
	}
	return v.aVal, nil
}

// AsObject returns the *Object of an Object value, or ErrWrongKind
// otherwise.
func (v *Value) AsObject() (*Object, error) {
	if !v.IsObject() {
		return nil, v.wrongKind(KindObject)
	}
	return v.oVal, nil
}

// TryBool, TryArray, TryObject are the non-throwing counterparts of the
// As* accessors: they return the zero value (false, nil, nil) instead of
// an error on a Kind mismatch, for call sites that would rather check
// than handle an error.
func (v *Value) TryBool() bool {
	b, _ := v.AsBool()
	return b
}

func (v *Value) TryArray() []*Value {
	a, _ := v.AsArray()
	return a
}

func (v *Value) TryObject() *Object {
	o, _ := v.AsObject()
	return o
}

// Field promotes v in place: if v is Null, it becomes an empty Object,
// the lazy-promotion rule for mutating indexed access. If v is
// already an Object and key is absent, a Null member is inserted. The
// returned Value is the (possibly newly-inserted) member, ready for
// further mutation: calling Field("b") on the member returned by
// v.Field("a"), then SetString("c") on that result, builds {"a":{"b":"c"}}.
// Field fails with ErrWrongKind, returned via the second result, if v is
// any other kind.
func (v *Value) Field(key string) (*Value, error) {
	if v.IsNull() {
		v.kind = KindObject
		v.oVal = NewObject()
	}
	if !v.IsObject() {
		return nil, v.wrongKind(KindObject)
	}
	if existing, ok := v.oVal.Get(key); ok {
		return existing, nil
	}
	return v.oVal.Set(key, Null()), nil
}

// At returns the const view of an object member, failing with
// ErrKeyNotFound if absent and ErrWrongKind if v is not an Object.
func (v *Value) At(key string) (*Value, error) {
	obj, err := v.AsObject()
	if err != nil {
		return nil, err
	}
	val, ok := obj.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return val, nil
}

// Contains reports whether v is an Object containing key. It never
// fails: a non-Object v simply does not contain key.
func (v *Value) Contains(key string) bool {
	if !v.IsObject() {
		return false
	}
	return v.oVal.Contains(key)
}

// Index returns the element at i in an Array value, or Null (not an
// error) if v is not an Array or i is out of range — a fluent-access
// style for drilling into a tree without a chain of error checks.
func (v *Value) Index(i int) *Value {
	if !v.IsArray() || i < 0 || i >= len(v.aVal) {
		return Null()
	}
	return v.aVal[i]
}

// Key returns the member named k in an Object value, or Null if v is not
// an Object or k is absent.
func (v *Value) Key(k string) *Value {
	if !v.IsObject() {
		return Null()
	}
	val, ok := v.oVal.Get(k)
	if !ok {
		return Null()
	}
	return val
}

// Append adds elements to an Array value in place. v must already be an
// Array (use NewArray or From to create one); ErrWrongKind otherwise.
func (v *Value) Append(elems ...*Value) error {
	if !v.IsArray() {
		return v.wrongKind(KindArray)
	}
	v.aVal = append(v.aVal, elems...)
	return nil
}

// SetBool, SetNumber, SetString overwrite v in place with a scalar of the
// named kind, regardless of v's previous kind.
func (v *Value) SetBool(b bool) { *v = Value{kind: KindBool, bVal: b} }

func (v *Value) SetNumber(n float64) { *v = Value{kind: KindNumber, nVal: n} }

func (v *Value) SetString(s string) { *v = Value{kind: KindString, sVal: s} }

// String renders v as minimized JSON text: v.String() ==
// string(Serialize(v, Minimized)).
func (v *Value) String() string {
	return string(Serialize(v, Minimized))
}

// Clone deep-copies v and everything it owns. Go's implicit struct copy is
// shallow for the slice and pointer fields behind Array and Object, so
// Clone is the explicit deep-copy primitive that gives an independent
// subtree.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{kind: v.kind, bVal: v.bVal, nVal: v.nVal, sVal: v.sVal}
	if v.aVal != nil {
		out.aVal = make([]*Value, len(v.aVal))
		for i, e := range v.aVal {
			out.aVal[i] = e.Clone()
		}
	}
	out.oVal = v.oVal.clone()
	return out
}

// Equal reports structural equality: same Kind, and recursively equal
// payloads. Two Nulls are always equal. NaN numbers are equal to each
// other (unlike IEEE-754 ==), matching the intuitive "same tree" notion
// rather than float comparison semantics.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.bVal == other.bVal
	case KindNumber:
		if math.IsNaN(v.nVal) && math.IsNaN(other.nVal) {
			return true
		}
		return v.nVal == other.nVal
	case KindString:
		return v.sVal == other.sVal
	case KindArray:
		if len(v.aVal) != len(other.aVal) {
			return false
		}
		for i, e := range v.aVal {
			if !e.Equal(other.aVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.oVal.equal(other.oVal)
	}
	return false
}
