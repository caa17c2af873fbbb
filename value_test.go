package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldPromotesNullToObject(t *testing.T) {
	root := Null()
	leaf, err := root.Field("a")
	require.NoError(t, err)
	_, err = leaf.Field("b")
	require.NoError(t, err)
	leaf2, err := root.Key("a").Field("b")
	require.NoError(t, err)
	leaf2.SetString("c")

	assert.True(t, root.IsObject())
	assert.True(t, root.Contains("a"))
	assert.Equal(t, `{"a":{"b":"c"}}`, root.String())
}

func TestFieldOnWrongKindFails(t *testing.T) {
	v := NewNumber(5)
	_, err := v.Field("a")
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestAtMissingKey(t *testing.T) {
	v := NewObjectValue()
	_, err := v.At("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestIndexAndKeyFluentAccess(t *testing.T) {
	v, err := ParseString(`[[[true, false]]]`)
	require.NoError(t, err)

	assert.True(t, v.Index(0).Index(0).Index(0).TryBool())
	assert.False(t, v.Index(0).Index(0).Index(1).TryBool())
	assert.True(t, v.Index(0).Index(0).Index(2).IsNull())
	assert.True(t, v.Index(-1).Index(1).Index(2).IsNull())

	obj, err := ParseString(`{"a":{"b":{"c":true,"d":false}}}`)
	require.NoError(t, err)
	assert.True(t, obj.Key("a").Key("b").Key("c").TryBool())
	assert.True(t, obj.Key("a").Key("e").Key("d").IsNull())
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	root := NewObjectValue()
	root.TryObject().Set("list", Array1D([]int{1, 2, 3}))

	clone := root.Clone()
	assert.True(t, root.Equal(clone))

	arr, _ := clone.Key("list").AsArray()
	arr[0].SetNumber(99)

	original, err := root.Key("list").AsArray()
	require.NoError(t, err)
	n, _ := original[0].AsNumber()
	assert.Equal(t, float64(1), n, "mutating the clone must not affect the original")
}

func TestEqual(t *testing.T) {
	a := MustFrom(map[string]any{"x": 1, "y": []any{true, nil}})
	b := MustFrom(map[string]any{"x": 1, "y": []any{true, nil}})
	c := MustFrom(map[string]any{"x": 2, "y": []any{true, nil}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, Null().Equal(Null()))
}

func TestFromConversionPriority(t *testing.T) {
	type named string

	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"string", "hi", KindString},
		{"bytes", []byte("hi"), KindString},
		{"stringer", namedStringer{}, KindString},
		{"map", map[string]int{"a": 1}, KindObject},
		{"slice", []int{1, 2, 3}, KindArray},
		{"bool", true, KindBool},
		{"nil", nil, KindNull},
		{"int", 5, KindNumber},
		{"float", 5.5, KindNumber},
		{"namedString", named("x"), KindString},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := From(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
		})
	}
}

func TestFromObjectIterator(t *testing.T) {
	seq := func(yield func(string, any) bool) {
		if !yield("a", 1) {
			return
		}
		yield("b", "two")
	}

	v, err := From(seq)
	require.NoError(t, err)
	assert.Equal(t, KindObject, v.Kind())
	assert.Equal(t, `{"a":1,"b":"two"}`, v.String())
}

func TestFromArrayIterator(t *testing.T) {
	seq := func(yield func(any) bool) {
		for _, x := range []any{1, "two", true} {
			if !yield(x) {
				return
			}
		}
	}

	v, err := From(seq)
	require.NoError(t, err)
	assert.Equal(t, KindArray, v.Kind())
	assert.Equal(t, `[1,"two",true]`, v.String())
}

type namedStringer struct{}

func (namedStringer) String() string { return "stringer" }

func TestFromUnsupportedType(t *testing.T) {
	_, err := From(make(chan int))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestArrayDimensionHelpers(t *testing.T) {
	v1 := Array1D([]int{1, 2, 3})
	assert.Equal(t, "[1,2,3]", v1.String())

	v2 := Array2D([][]int{{1, 2}, {3, 4}})
	assert.Equal(t, "[[1,2],[3,4]]", v2.String())

	v3 := Array3D([][][]int{{{1}, {2}}})
	assert.Equal(t, "[[[1],[2]]]", v3.String())
}
