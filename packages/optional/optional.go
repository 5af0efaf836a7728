// Package optional provides a value that may or may not be present.
package optional

import "fmt"

// Optional holds at most one value of type T. The zero value is empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding v.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Empty returns an Optional holding nothing.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// OfNullable returns an Optional holding *v, or an empty one when v is nil.
func OfNullable[T any](v *T) Optional[T] {
	if v == nil {
		return Empty[T]()
	}
	return Of(*v)
}

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// OrElse returns the held value, or other when empty.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// Represent renders the Optional with its value formatted by format.
func (o Optional[T]) Represent(format func(any) string) string {
	if !o.present {
		return "Optional.empty"
	}
	return "Optional[" + format(o.value) + "]"
}

func (o Optional[T]) String() string {
	return o.Represent(func(v any) string { return fmt.Sprint(v) })
}
