// Package comparison provides the equality and ordering strategies used by
// assertion chains.
package comparison

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
)

// ErrNotComparable is returned by Compare when two values have no ordering
// under a strategy.
var ErrNotComparable = errors.New("values are not comparable")

// Strategy decides equality and ordering between an actual value and another
// value. Implementations must be free of side effects so they can be shared
// between chains.
type Strategy interface {
	AreEqual(actual, other any) bool
	Compare(actual, other any) (int, error)
	String() string
}

// Standard is the natural strategy: go-cmp equality and the built-in ordering
// of numbers, strings and times.
var Standard Strategy = standard{}

// IsStandard reports whether s is the natural strategy.
func IsStandard(s Strategy) bool {
	_, ok := s.(standard)
	return s == nil || ok
}

type standard struct{}

func (standard) String() string { return "standard comparison" }

// exportAll lets cmp look at unexported fields instead of panicking on them.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func (standard) AreEqual(actual, other any) bool {
	return deepEqual(actual, other, exportAll)
}

func deepEqual(actual, other any, opts ...cmp.Option) (equal bool) {
	if isNil(actual) || isNil(other) {
		return isNil(actual) && isNil(other)
	}
	defer func() {
		if r := recover(); r != nil {
			equal = reflect.DeepEqual(actual, other)
		}
	}()
	return cmp.Equal(actual, other, opts...)
}

func (standard) Compare(actual, other any) (int, error) {
	return naturalOrder(actual, other)
}

func naturalOrder(actual, other any) (int, error) {
	if isNil(actual) || isNil(other) {
		return 0, fmt.Errorf("%w: cannot order null", ErrNotComparable)
	}

	if t, ok := actual.(time.Time); ok {
		if o, ok := other.(time.Time); ok {
			return t.Compare(o), nil
		}
	}

	av, ov := reflect.ValueOf(actual), reflect.ValueOf(other)
	switch {
	case isSigned(av) && isSigned(ov):
		return order(av.Int(), ov.Int()), nil
	case isUnsigned(av) && isUnsigned(ov):
		return order(av.Uint(), ov.Uint()), nil
	case isNumber(av) && isNumber(ov):
		return order(toFloat(av), toFloat(ov)), nil
	case av.Kind() == reflect.String && ov.Kind() == reflect.String:
		return strings.Compare(av.String(), ov.String()), nil
	}

	if av.Type() == ov.Type() {
		if m := av.MethodByName("Compare"); m.IsValid() {
			mt := m.Type()
			if mt.NumIn() == 1 && mt.NumOut() == 1 && mt.In(0) == ov.Type() && mt.Out(0).Kind() == reflect.Int {
				return int(m.Call([]reflect.Value{ov})[0].Int()), nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, actual, other)
}

func order[N int64 | uint64 | float64](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(v reflect.Value) bool {
	return isSigned(v) || isUnsigned(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isSigned(v):
		return float64(v.Int())
	case isUnsigned(v):
		return float64(v.Uint())
	}
	return v.Float()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Comparator builds a strategy from an ordering function. Values that are not
// of type T are never equal and cannot be ordered.
func Comparator[T any](fn func(a, b T) int) Strategy {
	return comparator[T]{fn: fn}
}

type comparator[T any] struct {
	fn func(a, b T) int
}

func (c comparator[T]) String() string {
	var zero T
	return fmt.Sprintf("comparator for %T", zero)
}

func (c comparator[T]) AreEqual(actual, other any) bool {
	n, err := c.Compare(actual, other)
	return err == nil && n == 0
}

func (c comparator[T]) Compare(actual, other any) (int, error) {
	a, aok := actual.(T)
	o, ook := other.(T)
	if !aok || !ook {
		return 0, fmt.Errorf("%w: %s cannot compare %T and %T", ErrNotComparable, c, actual, other)
	}
	return c.fn(a, o), nil
}

// Equivalence builds an equality-only strategy from a predicate. Ordering
// falls back to the natural order.
func Equivalence[T any](fn func(a, b T) bool) Strategy {
	return equivalence[T]{fn: fn}
}

type equivalence[T any] struct {
	fn func(a, b T) bool
}

func (e equivalence[T]) String() string {
	var zero T
	return fmt.Sprintf("equivalence for %T", zero)
}

func (e equivalence[T]) AreEqual(actual, other any) bool {
	a, aok := actual.(T)
	o, ook := other.(T)
	if !aok || !ook {
		return false
	}
	return e.fn(a, o)
}

func (e equivalence[T]) Compare(actual, other any) (int, error) {
	return naturalOrder(actual, other)
}

// WithOptions returns a go-cmp backed strategy using the given options, for
// example cmpopts.EquateEmpty() or cmpopts.IgnoreFields(...).
func WithOptions(opts ...cmp.Option) Strategy {
	return options{opts: opts}
}

type options struct {
	opts []cmp.Option
}

func (o options) String() string {
	return fmt.Sprintf("go-cmp with %d option(s)", len(o.opts))
}

func (o options) AreEqual(actual, other any) bool {
	return deepEqual(actual, other, o.opts...)
}

func (o options) Compare(actual, other any) (int, error) {
	return naturalOrder(actual, other)
}

// JSON compares values after a JSON round trip, so 30 and 30.0 are equal and
// structs equal the maps they serialize to.
var JSON Strategy = jsonEquivalence{}

type jsonEquivalence struct{}

func (jsonEquivalence) String() string { return "JSON equivalence" }

func (jsonEquivalence) AreEqual(actual, other any) bool {
	return deepEqual(normalizeJSON(actual), normalizeJSON(other))
}

func (jsonEquivalence) Compare(actual, other any) (int, error) {
	return naturalOrder(normalizeJSON(actual), normalizeJSON(other))
}

func normalizeJSON(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

// AlwaysEqual considers every pair of values equal.
var AlwaysEqual Strategy = alwaysEqual{}

type alwaysEqual struct{}

func (alwaysEqual) String() string { return "always equal" }

func (alwaysEqual) AreEqual(_, _ any) bool { return true }

func (alwaysEqual) Compare(_, _ any) (int, error) { return 0, nil }

// Named gives a strategy the name used in failure messages.
func Named(name string, s Strategy) Strategy {
	return named{Strategy: s, name: name}
}

type named struct {
	Strategy
	name string
}

func (n named) String() string { return n.name }
