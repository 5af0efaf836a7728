package assertions

import (
	"sync/atomic"

	"github.com/abdul-hamid-achik/affirm/packages/validators"
)

// AtomicAssert holds assertions on the value of a sync/atomic type. The value
// is loaded once per assertion.
type AtomicAssert[T any] struct {
	*Chain[*AtomicAssert[T], any]
	load func() T
}

func newAtomicAssert[T any](t TestingT, actual any, load func() T) *AtomicAssert[T] {
	a := &AtomicAssert[T]{load: load}
	a.Chain = NewChain(t, actual, a)
	return a
}

func ThatAtomicInt32(t TestingT, actual *atomic.Int32) *AtomicAssert[int32] {
	return newAtomicAssert(t, actual, func() int32 { return actual.Load() })
}

func ThatAtomicInt64(t TestingT, actual *atomic.Int64) *AtomicAssert[int64] {
	return newAtomicAssert(t, actual, func() int64 { return actual.Load() })
}

func ThatAtomicUint32(t TestingT, actual *atomic.Uint32) *AtomicAssert[uint32] {
	return newAtomicAssert(t, actual, func() uint32 { return actual.Load() })
}

func ThatAtomicUint64(t TestingT, actual *atomic.Uint64) *AtomicAssert[uint64] {
	return newAtomicAssert(t, actual, func() uint64 { return actual.Load() })
}

func ThatAtomicBool(t TestingT, actual *atomic.Bool) *AtomicAssert[bool] {
	return newAtomicAssert(t, actual, func() bool { return actual.Load() })
}

// ThatAtomicPointer asserts on the pointer held. The standard comparison
// compares the values pointed to.
func ThatAtomicPointer[P any](t TestingT, actual *atomic.Pointer[P]) *AtomicAssert[*P] {
	return newAtomicAssert(t, actual, func() *P { return actual.Load() })
}

func ThatAtomicValue(t TestingT, actual *atomic.Value) *AtomicAssert[any] {
	return newAtomicAssert(t, actual, func() any { return actual.Load() })
}

func (a *AtomicAssert[T]) HasValue(expected T) *AtomicAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertHasValue(a.info, a.actual, a.load, expected))
}

func (a *AtomicAssert[T]) DoesNotHaveValue(value T) *AtomicAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertDoesNotHaveValue(a.info, a.actual, a.load, value))
}

// Value loads the current value and returns a chain on it.
func (a *AtomicAssert[T]) Value() *ObjectAssert[T] {
	a.t.Helper()
	var v T
	if a.passed(validators.AssertNotNil(a.info, a.actual)) {
		v = a.load()
	}
	return subChain(a.Chain, v)
}
