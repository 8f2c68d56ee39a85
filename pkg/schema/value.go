package schema

import (
	"bytes"
	"encoding/json"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Value is an untyped JSON response, returned exactly as received.
// The caller is responsible for interpreting its fields.
type Value json.RawMessage

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MarshalJSON returns the value verbatim, or null if empty
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON stores a copy of the encoded value
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = append((*v)[0:0], data...)
	return nil
}

// Valid returns true if the value is well-formed, non-empty JSON
func (v Value) Valid() bool {
	return len(bytes.TrimSpace(v)) > 0 && json.Valid(v)
}

// Decode unmarshals the value into the given destination
func (v Value) Decode(dest any) error {
	return json.Unmarshal(v, dest)
}

// Indent returns the value indented for display
func (v Value) Indent() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, v, "", "  "); err != nil {
		return string(v)
	}
	return buf.String()
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (v Value) String() string {
	return string(v)
}
