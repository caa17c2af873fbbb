package json

import (
	"fmt"
	"os"
)

// ReadFile reads the named file into memory. The core never depends on
// the filesystem itself; this is a thin adapter that feeds Parse.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return data, nil
}

// ParseFile reads path and parses it as a single JSON document.
func ParseFile(path string) (*Value, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// WriteFile serializes v and writes it to path, overwriting any existing
// file.
func WriteFile(v *Value, path string, format Format) error {
	data := Serialize(v, format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return nil
}
