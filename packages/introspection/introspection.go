// Package introspection lists and reads the fields and properties of values.
//
// A property is a zero-argument method with a single result named after a
// field: Field3() or GetField3() for a field named field3. When both exist the
// property wins, so an accessor can stand in for a raw field value.
package introspection

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
	"unsafe"
)

var (
	// ErrNotFound is returned by Lookup when no field, property or map key
	// matches a name.
	ErrNotFound = errors.New("no field or property")

	// ErrUnsupported is returned for values that are neither structs nor maps.
	ErrUnsupported = errors.New("value has no fields or properties")
)

// Property is a readable field or property of a value.
type Property struct {
	Name  string
	Value any
	Nil   bool
}

// Introspector enumerates and reads fields and properties.
type Introspector interface {
	FieldsAndProperties(v any) ([]Property, error)
	Lookup(v any, name string) (any, error)
}

// Reflect is the reflection-based Introspector. Unexported fields are read
// too, matching what a caller sees when printing the value.
type Reflect struct{}

// Default is the Introspector used by assertion chains.
var Default Introspector = Reflect{}

// FieldsAndProperties returns every field of the struct behind v in
// declaration order. Package-level variables are never part of a value and
// are therefore never listed.
func (Reflect) FieldsAndProperties(v any) ([]Property, error) {
	rv, err := structValue(v)
	if err != nil {
		return nil, err
	}

	rt := rv.Type()
	props := make([]Property, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.Name == "_" {
			continue
		}
		value, ok := accessor(rv, field.Name)
		if !ok {
			value = fieldValue(rv.Field(i))
		}
		props = append(props, Property{
			Name:  field.Name,
			Value: valueInterface(value),
			Nil:   isNil(value),
		})
	}
	return props, nil
}

// Lookup reads a field, property or map entry by name. Dotted names walk
// nested values: "address.city".
func (r Reflect) Lookup(v any, name string) (any, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrNotFound)
	}
	current := v
	for _, segment := range strings.Split(name, ".") {
		next, err := lookupOne(current, segment)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		current = next
	}
	return current, nil
}

func lookupOne(v any, name string) (any, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w %q on null", ErrNotFound, name)
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map keys are %s", ErrUnsupported, rv.Type().Key())
		}
		entry := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !entry.IsValid() {
			return nil, fmt.Errorf("%w %q", ErrNotFound, name)
		}
		return valueInterface(entry), nil
	case reflect.Struct:
		rv = addressable(rv)
		if value, ok := accessor(rv, name); ok {
			return valueInterface(value), nil
		}
		if field, ok := findField(rv.Type(), name); ok {
			return valueInterface(fieldValue(rv.FieldByIndex(field.Index))), nil
		}
		return nil, fmt.Errorf("%w %q in %s", ErrNotFound, name, rv.Type())
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

func findField(rt reflect.Type, name string) (reflect.StructField, bool) {
	if f, ok := rt.FieldByName(name); ok {
		return f, true
	}
	// "name" finds Name and "Name" finds name.
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

func structValue(v any) (reflect.Value, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: null", ErrUnsupported)
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
	}
	return addressable(rv), nil
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// addressable copies rv so unexported fields can be read and pointer-receiver
// accessors called.
func addressable(rv reflect.Value) reflect.Value {
	if rv.CanAddr() {
		return rv
	}
	cp := reflect.New(rv.Type()).Elem()
	cp.Set(rv)
	return cp
}

func accessor(rv reflect.Value, name string) (value reflect.Value, ok bool) {
	exported := capitalize(name)
	candidates := []string{"Get" + exported}
	if exported != name {
		candidates = append([]string{exported}, candidates...)
	}

	target := rv
	if rv.CanAddr() {
		target = rv.Addr()
	}
	for _, candidate := range candidates {
		m := target.MethodByName(candidate)
		if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
			continue
		}
		if out, called := call(m); called {
			return out, true
		}
	}
	return reflect.Value{}, false
}

func call(m reflect.Value) (out reflect.Value, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return m.Call(nil)[0], true
}

func fieldValue(f reflect.Value) reflect.Value {
	if f.CanInterface() || !f.CanAddr() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

func valueInterface(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	if isNil(v) {
		return nil
	}
	return v.Interface()
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
