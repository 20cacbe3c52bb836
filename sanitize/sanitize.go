// Package sanitize converts parsed footer metadata into a tree that is safe
// for text serialization.
//
// Parquet footers embed raw byte strings (column statistics, min/max values)
// and typed enums that do not round-trip through JSON cleanly. Tree walks an
// arbitrarily nested value and produces an isomorphic structure built only
// from maps, slices, strings, and nulls.
package sanitize

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"unicode/utf8"
)

// Tree sanitizes v depth-first over a closed set of shapes:
//
//   - mappings and structs become map[string]any with sanitized values
//   - sequences become []any with order preserved
//   - byte strings become hex text when hexBytes is true, otherwise their
//     UTF-8 decoding; invalid UTF-8 in that mode is an error, never a
//     silent substitution
//   - nil pointers and nil slices become nil
//   - every other scalar becomes its canonical text representation
//
// The result is idempotent: sanitizing already-sanitized output returns an
// equal tree.
func Tree(v any, hexBytes bool) (any, error) {
	return walk(reflect.ValueOf(v), hexBytes)
}

func walk(rv reflect.Value, hexBytes bool) (any, error) {
	if !rv.IsValid() {
		return nil, nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return walk(rv.Elem(), hexBytes)

	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			val, err := walk(iter.Value(), hexBytes)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(iter.Key().Interface())] = val
		}
		return out, nil

	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return sanitizeBytes(rv, hexBytes)
		}
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			val, err := walk(rv.Index(i), hexBytes)
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil

	case reflect.Struct:
		t := rv.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			val, err := walk(rv.Field(i), hexBytes)
			if err != nil {
				return nil, err
			}
			out[field.Name] = val
		}
		return out, nil

	case reflect.String:
		return rv.String(), nil

	default:
		// fmt picks up Stringer implementations, so typed enums render as
		// their names rather than bare integers.
		return fmt.Sprint(rv.Interface()), nil
	}
}

func sanitizeBytes(rv reflect.Value, hexBytes bool) (any, error) {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, nil
	}
	var b []byte
	if rv.Kind() == reflect.Slice {
		b = rv.Bytes()
	} else {
		b = make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
	}
	if hexBytes {
		return hex.EncodeToString(b), nil
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("byte value %q is not valid UTF-8", b)
	}
	return string(b), nil
}
