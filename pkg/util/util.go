package util

import (
	"reflect"
)

// IsNil reports whether itf is nil or a typed nil pointer, map, slice, chan or
// func hiding inside a non-nil interface.
func IsNil(itf any) bool {
	if itf == nil {
		return true
	}

	switch v := reflect.ValueOf(itf); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}

	return false
}
