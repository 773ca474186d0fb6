package db

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// ColumnValuer is implemented by field types that need a different value
// on the wire than their Go representation.
type ColumnValuer interface {
	ColumnValue() (any, error)
}

type fieldInfo struct {
	column string
	index  []int
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		if tag == "" || tag == "-" {
			continue
		}
		fields = append(fields, fieldInfo{column: tag, index: f.Index})
	}

	fieldCache.Store(t, fields)
	return fields
}

func structType[T any]() reflect.Type {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("db: %s is not a struct", t))
	}
	return t
}

// Columns returns the db-tagged column names of T in field order.
func Columns[T any]() []string {
	fields := fieldsOf(structType[T]())
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.column
	}
	return cols
}

// Rows converts records to positional values in Columns[T] order. Nil
// pointers become NULL and ColumnValuer fields are resolved.
func Rows[T any](records []T) ([][]any, error) {
	fields := fieldsOf(structType[T]())
	out := make([][]any, len(records))

	for i := range records {
		rv := reflect.ValueOf(&records[i]).Elem()
		if rv.Kind() == reflect.Pointer {
			rv = rv.Elem()
		}
		row := make([]any, len(fields))
		for j, f := range fields {
			v, err := columnValue(rv.FieldByIndex(f.index))
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i, f.column, err)
			}
			row[j] = v
		}
		out[i] = row
	}

	return out, nil
}

func columnValue(v reflect.Value) (any, error) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if cv, ok := v.Interface().(ColumnValuer); ok {
		return cv.ColumnValue()
	}
	return v.Interface(), nil
}
