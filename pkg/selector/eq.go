package selector

import (
	"cmp"
	"fmt"
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// equality matches exactly one value under the natural ordering of its
// element type. Values of different types never reach the same group, so the
// ordering queries may assume v has the stored type.
type equality struct {
	rv  reflect.Value
	typ reflect.Type
}

// Eq builds an equality selector for an ordered scalar.
func Eq[T cmp.Ordered](v T) Selector {
	return equality{rv: reflect.ValueOf(v), typ: reflect.TypeFor[T]()}
}

// Value promotes a plain value to an equality selector. Supported element
// types: booleans, integers, floats, strings, pointers and time.Time. A value
// that already is a Selector passes through unchanged.
func Value(v any) (Selector, error) {
	if s, ok := v.(Selector); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: untyped nil", ErrUnsupported)
	}
	if !comparableValue(rv) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
	}
	return equality{rv: rv, typ: rv.Type()}, nil
}

func (s equality) Less(v any) bool {
	return lessValues(s.rv, reflect.ValueOf(v))
}

func (s equality) Greater(v any) bool {
	return lessValues(reflect.ValueOf(v), s.rv)
}

func (s equality) Compare(other Selector) int {
	o := other.(equality)
	if lessValues(s.rv, o.rv) {
		return -1
	}
	if lessValues(o.rv, s.rv) {
		return 1
	}
	return 0
}

func (s equality) Signature() string  { return "eq[" + s.typ.String() + "]" }
func (s equality) Type() reflect.Type { return s.typ }

func (s equality) String() string {
	return fmt.Sprintf("%s{%v}", s.Signature(), s.rv.Interface())
}

func comparableValue(rv reflect.Value) bool {
	if rv.Type() == timeType {
		return true
	}
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String,
		reflect.Pointer, reflect.UnsafePointer:
		return true
	}
	return false
}

// lessValues orders two values of the same element type.
func lessValues(a, b reflect.Value) bool {
	if a.Type() == timeType {
		return a.Interface().(time.Time).Before(b.Interface().(time.Time))
	}
	switch a.Kind() {
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	case reflect.Pointer, reflect.UnsafePointer:
		return a.Pointer() < b.Pointer()
	}
	panic(fmt.Sprintf("selector: no ordering for %s", a.Type()))
}
