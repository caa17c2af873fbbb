package json_test

import (
	"fmt"

	kjson "github.com/kjson/kjson"
)

func Example() {
	// Parse a document. ParseString, Parse ([]byte), and ParseReader all
	// feed the same recursive-descent parser.
	val, err := kjson.ParseString(`
	{
		"null": null,
		"number": 5,
		"boolean": true,
		"array": [null, 5, 5.0, true],
		"object": {}
	}
	`)
	if err != nil {
		panic(err)
	}

	// Inspect the kind with Kind(), or one of the Is* predicates.
	if val.Kind() != kjson.KindObject {
		panic("expected an object")
	}

	// Typed accessors fail with ErrWrongKind on a mismatch.
	obj, _ := val.AsObject()
	n, _ := obj.ValueOr("number", kjson.Null()).AsNumber()
	fmt.Println(n)

	// Key and Index give a fluent interface for drilling into a tree:
	// wrong kinds and missing members propagate a Null value instead of
	// panicking, so a chain of lookups is safe to write without checking
	// each step.
	arr, _ := val.At("array")
	_ = arr

	band, err := kjson.ParseString(`{
		"name": "The Beatles",
		"members": [
			{"name": "John", "role": "guitar"},
			{"name": "Paul", "role": "bass"},
			{"name": "George", "role": "guitar"},
			{"name": "Ringo", "role": "drums"}
		]
	}`)
	if err != nil {
		panic(err)
	}

	name, _ := band.Key("members").Index(2).Key("name").AsString()
	fmt.Println(name)

	// Drilling through a missing key or an out-of-range index just
	// propagates Null.
	fmt.Println(band.Key("something").Index(-1).Key("").IsNull())

	// Serialize back to JSON, pretty or minimized.
	fmt.Println(string(kjson.Serialize(kjson.MustFrom(map[string]any{"x": []int{1, 2, 3}}), kjson.Minimized)))

	// Output:
	// 5
	// George
	// true
	// {"x":[1,2,3]}
}
