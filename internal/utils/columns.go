package utils

import (
	"fmt"
	"reflect"
)

// ColumnTag is the struct tag that names a table column.
const ColumnTag = "db"

// Columns returns the tagged column names of a struct in field order.
func Columns(row any) []string {
	var out []string
	eachColumn(row, func(name string, _ reflect.Value) {
		out = append(out, name)
	})
	return out
}

// ColumnValues maps every tagged column of a struct to its field value,
// ready for squirrel's SetMap.
func ColumnValues(row any) map[string]any {
	out := make(map[string]any)
	eachColumn(row, func(name string, v reflect.Value) {
		out[name] = v.Interface()
	})
	return out
}

func eachColumn(row any, fn func(name string, v reflect.Value)) {
	v := reflect.ValueOf(row)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		panic(fmt.Sprintf("utils: want a struct row, got %T", row))
	}

	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get(ColumnTag)
		if name == "" || name == "-" {
			continue
		}
		fn(name, v.Field(i))
	}
}

// Wrap annotates err with msg, passing nil through.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
