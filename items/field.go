/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package items

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Kind names the JSON shape of a Field.
type Kind string

const (
	KindMissing Kind = "missing"
	KindNull    Kind = "null"
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindList    Kind = "list"
	KindObject  Kind = "object"
)

// Field is a single item attribute in its raw wire form.
// The zero Field is a missing attribute.
type Field struct {
	raw json.RawMessage
}

// Text returns a Field holding s as a JSON string.
func Text(s string) Field {
	b, _ := json.Marshal(s) // strings always marshal
	return Field{raw: b}
}

// Null returns a Field holding an explicit JSON null.
func Null() Field {
	return Field{raw: json.RawMessage("null")}
}

// JSON returns a Field holding the raw JSON literal v.
func JSON(v string) Field {
	return Field{raw: json.RawMessage(v)}
}

// Present reports whether the attribute appeared at all, null included.
func (f Field) Present() bool {
	return len(bytes.TrimSpace(f.raw)) > 0
}

// IsNull reports whether the attribute is an explicit null.
func (f Field) IsNull() bool {
	return f.Kind() == KindNull
}

// Kind reports the JSON shape of the attribute.
func (f Field) Kind() Kind {
	b := bytes.TrimSpace(f.raw)
	if len(b) == 0 {
		return KindMissing
	}
	switch b[0] {
	case 'n':
		return KindNull
	case '"':
		return KindText
	case 't', 'f':
		return KindBoolean
	case '[':
		return KindList
	case '{':
		return KindObject
	default:
		return KindNumber
	}
}

// Text returns the attribute's string value, or false when it is not text.
func (f Field) Text() (string, bool) {
	if f.Kind() != KindText {
		return "", false
	}
	var s string
	if err := json.Unmarshal(f.raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// String returns the text value or the empty string.
func (f Field) String() string {
	s, _ := f.Text()
	return s
}

// IsZero reports whether the attribute is missing, so omitzero drops it.
func (f Field) IsZero() bool {
	return !f.Present()
}

// MarshalJSON implements json.Marshaler.
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Present() {
		return []byte("null"), nil
	}
	return f.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler. It is also called for null.
func (f *Field) UnmarshalJSON(b []byte) error {
	f.raw = slices.Clone(b)
	return nil
}
