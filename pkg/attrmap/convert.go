package attrmap

import (
	"bytes"
	"fmt"
	"reflect"
)

// NormalizeKey returns the canonical form of key. Strings and Symbols map to
// their text, fmt.Stringer values to String(), named string types to their
// underlying text and anything else to its fmt.Sprint form.
func NormalizeKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case Symbol:
		return string(k)
	case fmt.Stringer:
		return k.String()
	case nil:
		return ""
	}
	if rv := reflect.ValueOf(key); rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(key)
}

// IsMapShaped reports whether v can be read as a Map: a non-nil *Map or a
// value of any map kind.
func IsMapShaped(v any) bool {
	return isMapShaped(v)
}

func isMapShaped(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case *Map:
		return x != nil
	case map[string]any, map[Symbol]any:
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}

// ValuesEqual compares a and b by canonical content: mappings are compared
// key by key after normalization, sequences element by element.
func ValuesEqual(a, b any) bool {
	return reflect.DeepEqual(plainValue(convertValue(a)), plainValue(convertValue(b)))
}

// eachEntry calls fn for every entry of a mapping value with its key normalized.
func eachEntry(src any, fn func(string, any)) {
	switch x := src.(type) {
	case nil:
		return
	case *Map:
		if x == nil {
			return
		}
		for k, v := range x.values {
			fn(k, v)
		}
		return
	case map[string]any:
		for k, v := range x {
			fn(k, v)
		}
		return
	case map[Symbol]any:
		for k, v := range x {
			fn(string(k), v)
		}
		return
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Map {
		return
	}
	iter := rv.MapRange()
	for iter.Next() {
		fn(NormalizeKey(iter.Key().Interface()), iter.Value().Interface())
	}
}

// convertValue turns mappings into *Map and copies sequences, so the result
// shares no mutable storage with v. Sequences that may hold mappings become
// []any; other slices and arrays keep their type.
func convertValue(v any) any {
	switch x := v.(type) {
	case nil, string, bool, int, int32, int64, float32, float64:
		return v
	case []byte:
		return bytes.Clone(x)
	case *Map:
		if x == nil {
			return nil
		}
		return x.Duplicate()
	case map[string]any:
		return From(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = convertValue(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = From(e)
		}
		return out
	case []*Map:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = convertValue(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return From(v)
	case reflect.Slice, reflect.Array:
		switch rv.Type().Elem().Kind() {
		case reflect.Map, reflect.Interface:
			out := make([]any, rv.Len())
			for i := range out {
				out[i] = convertValue(rv.Index(i).Interface())
			}
			return out
		}
		return copySequence(rv)
	}
	return v
}

// copySequence copies a slice or array of non-mapping elements, recursing
// into nested sequences.
func copySequence(rv reflect.Value) any {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return rv.Interface()
	}

	var out reflect.Value
	if rv.Kind() == reflect.Slice {
		out = reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	} else {
		out = reflect.New(rv.Type()).Elem()
	}
	reflect.Copy(out, rv)

	switch rv.Type().Elem().Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			out.Index(i).Set(reflect.ValueOf(copySequence(rv.Index(i))))
		}
	case reflect.Interface:
		for i := range rv.Len() {
			e := reflect.ValueOf(convertValue(rv.Index(i).Interface()))
			if e.IsValid() && e.Type().AssignableTo(out.Type().Elem()) {
				out.Index(i).Set(e)
			}
		}
	}
	return out.Interface()
}

// plainValue is the inverse of convertValue for serialization.
func plainValue(v any) any {
	switch x := v.(type) {
	case *Map:
		if x == nil {
			return nil
		}
		return x.ToPlainMap()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plainValue(e)
		}
		return out
	}
	return v
}
