package db

import (
	"strings"
)

// TextArray is a TEXT[] column. A nil array is NULL.
type TextArray []string

// ColumnValue implements ColumnValuer.
func (a TextArray) ColumnValue() (any, error) {
	if a == nil {
		return nil, nil
	}
	return []string(a), nil
}

// MarshalCSV renders the array in PostgreSQL literal form.
func (a TextArray) MarshalCSV() (string, error) {
	if a == nil {
		return "", nil
	}
	quoted := make([]string, len(a))
	for i, s := range a {
		s = strings.ReplaceAll(s, `\`, `\\`)
		s = strings.ReplaceAll(s, `"`, `\"`)
		quoted[i] = `"` + s + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}", nil
}
