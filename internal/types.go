package internal

import "reflect"

// IsNil reports whether val is an untyped nil or a nil-valued
// pointer, interface, func, map, slice or channel.
func IsNil(val any) bool {
	if val == nil {
		return true
	}
	switch v := reflect.ValueOf(val); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
