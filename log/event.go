package log

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/toon-format/toon-go"
)

// simpleTypeToStr converts simple types to string
// panics if v is of complex type
func simpleTypeToStr(v any) string {
	rt := reflect.TypeOf(v)
	kind := rt.Kind()
	switch kind {
	case reflect.Array, reflect.Slice, reflect.Struct, reflect.Map, reflect.Chan, reflect.Interface, reflect.Pointer:
		panic(fmt.Sprintf("simpleTypeToStr: value is of kind %v", kind))
	case reflect.String:
		return v.(string)
	}
	return fmt.Sprintf("%v", v)
}

// MarshalEvent frames toon-encoded data as a record:
//
//	--- <len> <unix ms> <name>
//	<data>
//
// A newline is added after data if it doesn't end with one.
func MarshalEvent(name string, t time.Time, d []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(name) + len(d) + 32)
	buf.WriteString("--- ")
	buf.WriteString(strconv.Itoa(len(d)))
	buf.WriteByte(' ')
	buf.WriteString(strconv.FormatInt(t.UnixMilli(), 10))
	if name != "" {
		buf.WriteByte(' ')
		buf.WriteString(name)
	}
	buf.WriteByte('\n')
	if n := len(d); n > 0 {
		buf.Write(d)
		if d[n-1] != '\n' {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// Event records event with key / value pairs in toon format in events log
// vals must be even in length, keys must be simple types
func Event(name string, vals ...any) error {
	n := len(vals)
	if n%2 != 0 {
		return fmt.Errorf("log.Event: odd number of vals (%d)", n)
	}
	var d []byte
	if n > 0 {
		m := map[string]any{}
		for i := 0; i < n; i += 2 {
			k := simpleTypeToStr(vals[i])
			m[k] = vals[i+1]
		}
		var err error
		d, err = toon.Marshal(m)
		if err != nil {
			return err
		}
	}
	Verbosef("event: %s\n%s\n", name, d)
	return eventsLog.Write(MarshalEvent(name, time.Now().UTC(), d))
}
