package json

import (
	"encoding"
	"fmt"
	"iter"
	"reflect"
)

// From converts an arbitrary Go value into a *Value, choosing among the
// JSON kinds it could plausibly represent by a fixed priority order:
// String-like > Object-like > Array-like > Bool > Null > Numeric. The
// order matters because a single Go type can satisfy more than one
// category (a string is both "string-like" and, via reflect, "iterable");
// without a fixed order the choice would be ambiguous.
//
// Go has no compile-time exhaustive type-switch, so the categories are
// tried in order at runtime; a value matching none of them yields a Null
// Value and a non-nil error wrapping ErrUnsupportedType.
func From(in any) (*Value, error) {
	if in == nil {
		return Null(), nil
	}

	if v, ok := asStringLike(in); ok {
		return v, nil
	}
	if v, ok := asObjectLike(in); ok {
		return v, nil
	}
	if v, ok := asArrayLike(in); ok {
		return v, nil
	}
	if b, ok := in.(bool); ok {
		return NewBool(b), nil
	}

	if v, ok := asNumeric(in); ok {
		return v, nil
	}

	return Null(), fmt.Errorf("%w: %T", ErrUnsupportedType, in)
}

// MustFrom is From, panicking on failure. Intended for call sites
// constructing a literal tree from known-good Go values.
func MustFrom(in any) *Value {
	v, err := From(in)
	if err != nil {
		panic(err)
	}
	return v
}

func asStringLike(in any) (*Value, bool) {
	switch x := in.(type) {
	case string:
		return NewString(x), true
	case []byte:
		return NewString(string(x)), true
	case fmt.Stringer:
		return NewString(x.String()), true
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return nil, false
		}
		return NewString(string(text)), true
	}
	// Named types with string/[]byte underlying kinds (e.g. type ID string)
	// don't match the exact-type cases above, since a Go type switch
	// compares dynamic type, not underlying kind.
	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.String:
		return NewString(rv.String()), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return NewString(string(rv.Bytes())), true
		}
	}
	return nil, false
}

// asObjectLike recognizes a string-keyed map, or a Go 1.23 iter.Seq2[string,
// any] iterator (e.g. a method value shaped like func(yield func(string,
// any) bool)).
func asObjectLike(in any) (*Value, bool) {
	var seq iter.Seq2[string, any]
	switch f := in.(type) {
	case iter.Seq2[string, any]:
		seq = f
	case func(func(string, any) bool):
		seq = f
	}
	if seq != nil {
		obj := NewObject()
		for k, val := range seq {
			elem, err := From(val)
			if err != nil {
				return nil, false
			}
			obj.Set(k, elem)
		}
		return &Value{kind: KindObject, oVal: obj}, true
	}

	rv := reflect.ValueOf(in)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	obj := NewObject()
	mapIter := rv.MapRange()
	for mapIter.Next() {
		elem, err := From(mapIter.Value().Interface())
		if err != nil {
			return nil, false
		}
		obj.Set(mapIter.Key().String(), elem)
	}
	return &Value{kind: KindObject, oVal: obj}, true
}

// asArrayLike recognizes a slice, an array, or a Go 1.23 iter.Seq[any]
// iterator (or a plain func(yield func(any) bool)).
func asArrayLike(in any) (*Value, bool) {
	var seq iter.Seq[any]
	switch f := in.(type) {
	case iter.Seq[any]:
		seq = f
	case func(func(any) bool):
		seq = f
	}
	if seq != nil {
		var elems []*Value
		for x := range seq {
			elem, err := From(x)
			if err != nil {
				return nil, false
			}
			elems = append(elems, elem)
		}
		return &Value{kind: KindArray, aVal: elems}, true
	}

	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	n := rv.Len()
	elems := make([]*Value, n)
	for i := 0; i < n; i++ {
		elem, err := From(rv.Index(i).Interface())
		if err != nil {
			return nil, false
		}
		elems[i] = elem
	}
	return &Value{kind: KindArray, aVal: elems}, true
}

func asNumeric(in any) (*Value, bool) {
	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewNumber(float64(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NewNumber(float64(rv.Uint())), true
	case reflect.Float32, reflect.Float64:
		return NewNumber(rv.Float()), true
	}
	return nil, false
}

// Leaf is the set of Go types Array1D/Array2D/Array3D accept as elements:
// the bool, string and numeric kinds, each of which From turns into a
// scalar Value.
type Leaf interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Array1D builds an Array value from a flat slice of leaves.
func Array1D[T Leaf](xs []T) *Value {
	elems := make([]*Value, len(xs))
	for i, x := range xs {
		elems[i] = MustFrom(x)
	}
	return &Value{kind: KindArray, aVal: elems}
}

// Array2D builds an Array of Arrays, each row built by Array1D.
func Array2D[T Leaf](xs [][]T) *Value {
	elems := make([]*Value, len(xs))
	for i, row := range xs {
		elems[i] = Array1D(row)
	}
	return &Value{kind: KindArray, aVal: elems}
}

// Array3D builds an Array of Arrays of Arrays, each plane built by
// Array2D. Depths beyond 3 require building the tree explicitly, with
// NewArray around Array3D results or From on a [][][][]... slice.
func Array3D[T Leaf](xs [][][]T) *Value {
	elems := make([]*Value, len(xs))
	for i, plane := range xs {
		elems[i] = Array2D(plane)
	}
	return &Value{kind: KindArray, aVal: elems}
}
