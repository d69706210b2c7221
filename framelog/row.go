package framelog

import (
	"fmt"
	"reflect"
	"strconv"
)

// Row is implemented by row types that enumerate their own fields.
// Fields must return values in column order and the same number
// of values for every row.
// Recorder[T] also uses Fields() when only *T implements Row.
// A nil pointer row is written as a zero value
type Row interface {
	Fields() []any
}

var rowType = reflect.TypeFor[Row]()

// appendFieldsFunc appends fields of a row, in column order, to dst
type appendFieldsFunc[R any] func(dst []any, row R) []any

// fieldsOf picks how fields of R are enumerated. It's decided once,
// when the recorder is created:
//   - R or *R implements Row: Fields()
//   - R is a struct or a pointer to struct: exported fields in
//     declaration order, except those tagged `framelog:"-"`
//   - otherwise R is a single column
//
// R that is an interface type is resolved for every row
func fieldsOf[R any]() appendFieldsFunc[R] {
	t := reflect.TypeFor[R]()
	if t.Implements(rowType) {
		return func(dst []any, row R) []any {
			return appendRowFields(dst, any(row).(Row))
		}
	}
	if t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(rowType) {
		return func(dst []any, row R) []any {
			return append(dst, any(&row).(Row).Fields()...)
		}
	}
	if t.Kind() == reflect.Interface {
		return func(dst []any, row R) []any {
			return appendDynamicFields(dst, any(row))
		}
	}
	if idx := structFields(t); idx != nil {
		return func(dst []any, row R) []any {
			return appendStructFields(dst, reflect.ValueOf(row), idx)
		}
	}
	return func(dst []any, row R) []any {
		return append(dst, row)
	}
}

func appendDynamicFields(dst []any, v any) []any {
	if v == nil {
		return append(dst, v)
	}
	if r, ok := v.(Row); ok {
		return appendRowFields(dst, r)
	}
	if idx := structFields(reflect.TypeOf(v)); idx != nil {
		return appendStructFields(dst, reflect.ValueOf(v), idx)
	}
	return append(dst, v)
}

// appendRowFields calls r.Fields(). For a nil pointer it calls Fields()
// on a pointer to zero value instead, so that nil rows print like
// zero values and value receivers don't panic
func appendRowFields(dst []any, r Row) []any {
	v := reflect.ValueOf(r)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		r = reflect.New(v.Type().Elem()).Interface().(Row)
	}
	return append(dst, r.Fields()...)
}

// structFields returns indexes of fields that are columns,
// nil if t is not a struct or pointer to struct
func structFields(t reflect.Type) []int {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	res := []int{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("framelog") == "-" {
			continue
		}
		res = append(res, i)
	}
	return res
}

func appendStructFields(dst []any, v reflect.Value, idx []int) []any {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			// nil row prints like a zero value
			v = reflect.Zero(v.Type().Elem())
		} else {
			v = v.Elem()
		}
	}
	for _, i := range idx {
		dst = append(dst, v.Field(i).Interface())
	}
	return dst
}

// Columns returns column names for a struct row type R: value of
// `framelog:"name"` tag or the field name. Returns nil for row types
// that are not structs or that implement Row.
// Use with Recorder.SetColumns()
func Columns[R any]() []string {
	t := reflect.TypeFor[R]()
	if t.Implements(rowType) || reflect.PointerTo(t).Implements(rowType) {
		return nil
	}
	idx := structFields(t)
	if idx == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	res := make([]string, 0, len(idx))
	for _, i := range idx {
		f := t.Field(i)
		name := f.Tag.Get("framelog")
		if name == "" {
			name = f.Name
		}
		res = append(res, name)
	}
	return res
}

// appendText appends default text representation of v:
// strings as is (tabs and newlines are not escaped), integers in base 10,
// everything else formatted with %v
func appendText(b []byte, v any) []byte {
	switch v := v.(type) {
	case string:
		return append(b, v...)
	case int:
		return strconv.AppendInt(b, int64(v), 10)
	case int64:
		return strconv.AppendInt(b, v, 10)
	case int32:
		return strconv.AppendInt(b, int64(v), 10)
	case uint64:
		return strconv.AppendUint(b, v, 10)
	case float64:
		return strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	return fmt.Appendf(b, "%v", v)
}
