package assertions

import (
	"github.com/abdul-hamid-achik/affirm/packages/validators"
)

// NumberAssert holds assertions on integers and floats.
type NumberAssert[N validators.Number] struct {
	*Chain[*NumberAssert[N], N]
}

func ThatNumber[N validators.Number](t TestingT, actual N) *NumberAssert[N] {
	a := &NumberAssert[N]{}
	a.Chain = NewChain(t, actual, a)
	return a
}

func (a *NumberAssert[N]) IsEqualTo(expected N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertEqual(a.info, a.actual, expected))
}

func (a *NumberAssert[N]) IsNotEqualTo(other N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertNotEqual(a.info, a.actual, other))
}

func (a *NumberAssert[N]) IsZero() *NumberAssert[N] {
	a.t.Helper()
	return a.IsEqualTo(0)
}

func (a *NumberAssert[N]) IsNotZero() *NumberAssert[N] {
	a.t.Helper()
	return a.IsNotEqualTo(0)
}

func (a *NumberAssert[N]) IsPositive() *NumberAssert[N] {
	a.t.Helper()
	return a.IsGreaterThan(0)
}

func (a *NumberAssert[N]) IsNegative() *NumberAssert[N] {
	a.t.Helper()
	return a.IsLessThan(0)
}

func (a *NumberAssert[N]) IsIn(values ...N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertIsIn(a.info, a.actual, toAny(values)))
}

func (a *NumberAssert[N]) IsNotIn(values ...N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertIsNotIn(a.info, a.actual, toAny(values)))
}

func (a *NumberAssert[N]) IsLessThan(other N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertLessThan(a.info, a.actual, other))
}

func (a *NumberAssert[N]) IsLessThanOrEqualTo(other N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertLessThanOrEqual(a.info, a.actual, other))
}

func (a *NumberAssert[N]) IsGreaterThan(other N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertGreaterThan(a.info, a.actual, other))
}

func (a *NumberAssert[N]) IsGreaterThanOrEqualTo(other N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertGreaterThanOrEqual(a.info, a.actual, other))
}

func (a *NumberAssert[N]) IsBetween(start, end N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertIsBetween(a.info, a.actual, start, end, true, true))
}

func (a *NumberAssert[N]) IsStrictlyBetween(start, end N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertIsBetween(a.info, a.actual, start, end, false, false))
}

// IsCloseTo checks |actual - expected| <= offset.
func (a *NumberAssert[N]) IsCloseTo(expected, offset N) *NumberAssert[N] {
	a.t.Helper()
	return a.Check(validators.AssertIsCloseTo(a.info, a.actual, expected, offset))
}
