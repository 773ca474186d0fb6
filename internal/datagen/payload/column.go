package payload

import (
	"encoding/json"
)

// JSON is a nullable document column. The zero value is SQL NULL.
type JSON struct {
	V Value
}

// Of wraps a document for storage.
func Of(v Value) JSON {
	return JSON{V: v}
}

// IsNull reports whether the column holds no document.
func (j JSON) IsNull() bool {
	return j.V == nil
}

// ColumnValue returns the encoded document, or nil for NULL.
func (j JSON) ColumnValue() (any, error) {
	if j.IsNull() {
		return nil, nil
	}
	b, err := Encode(j.V)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

// MarshalJSON implements json.Marshaler.
func (j JSON) MarshalJSON() ([]byte, error) {
	if j.IsNull() {
		return []byte("null"), nil
	}
	return Encode(j.V)
}

// MarshalCSV renders the document as JSON text, empty for NULL.
func (j JSON) MarshalCSV() (string, error) {
	if j.IsNull() {
		return "", nil
	}
	b, err := Encode(j.V)
	return string(b), err
}
