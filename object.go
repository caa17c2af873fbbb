package json

import (
	"sort"

	"go4.org/mem"
)

// entry is one key/value member of an Object.
type entry struct {
	key string
	val *Value
}

// Object is an ordered mapping from string keys to Values. Members are
// kept sorted by key, which is the only ordering the package promises for
// iteration (spec: "Object iteration order is the ordering of the
// underlying ordered map (sorted by key)"). Duplicate keys inserted via
// Set resolve last-write-wins.
type Object struct {
	entries []entry
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{}
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// search finds the insertion point for key among the sorted entries, and
// whether an exact match was found there.
func (o *Object) search(key string) (int, bool) {
	i := sort.Search(len(o.entries), func(i int) bool {
		return o.entries[i].key >= key
	})
	return i, i < len(o.entries) && o.entries[i].key == key
}

// Set inserts or overwrites the member named key. It returns the stored
// Value so callers can chain mutation.
func (o *Object) Set(key string, v *Value) *Value {
	i, found := o.search(key)
	if found {
		o.entries[i].val = v
		return v
	}
	o.entries = append(o.entries, entry{})
	copy(o.entries[i+1:], o.entries[i:])
	o.entries[i] = entry{key: key, val: v}
	return v
}

// Get returns the member named key and whether it was present.
func (o *Object) Get(key string) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	i, found := o.search(key)
	if !found {
		return nil, false
	}
	return o.entries[i].val, true
}

// Contains reports whether key is present.
func (o *Object) Contains(key string) bool {
	_, found := o.Get(key)
	return found
}

// ValueOr returns the stored value for key, or def if absent.
func (o *Object) ValueOr(key string, def *Value) *Value {
	if v, ok := o.Get(key); ok {
		return v
	}
	return def
}

// LookupBytes looks up a member using a borrowed byte slice key, without
// allocating a string for the probe. This is the heterogeneous lookup the
// spec requires of the ordered-map container (§4.1, §9 "Heterogeneous key
// lookup"), grounded on go4.org/mem's zero-copy byte-slice comparisons.
func (o *Object) LookupBytes(key []byte) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	target := mem.B(key)
	for _, e := range o.entries {
		if mem.Equal(target, mem.S(e.key)) {
			return e.val, true
		}
	}
	return nil, false
}

// ContainsBytes reports whether key (borrowed, not copied) names a
// member.
func (o *Object) ContainsBytes(key []byte) bool {
	_, found := o.LookupBytes(key)
	return found
}

// Delete removes the member named key, if present.
func (o *Object) Delete(key string) {
	i, found := o.search(key)
	if !found {
		return
	}
	o.entries = append(o.entries[:i], o.entries[i+1:]...)
}

// Keys returns the member keys in iteration (sorted) order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.key
	}
	return keys
}

// Range calls fn for each member in key order, stopping early if fn
// returns false.
func (o *Object) Range(fn func(key string, v *Value) bool) {
	if o == nil {
		return
	}
	for _, e := range o.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}

// clone deep-copies the object and all of its members.
func (o *Object) clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{entries: make([]entry, len(o.entries))}
	for i, e := range o.entries {
		out.entries[i] = entry{key: e.key, val: e.val.Clone()}
	}
	return out
}

// equal reports structural equality between two objects: same keys,
// pairwise-equal values, independent of internal slice capacity.
func (o *Object) equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for i, e := range o.entries {
		if e.key != other.entries[i].key || !e.val.Equal(other.entries[i].val) {
			return false
		}
	}
	return true
}
