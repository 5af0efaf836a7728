package validators

import (
	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"golang.org/x/exp/constraints"
)

// Number is the type set accepted by numeric assertions.
type Number interface {
	constraints.Integer | constraints.Float
}

// compare orders actual against other with the description's strategy. A
// strategy that cannot order the pair fails the assertion.
func compare(info failure.Info, actual, other any) (int, error) {
	s := info.Comparison()
	c, err := s.Compare(actual, other)
	if err != nil {
		return 0, failure.Fail(info, failure.ShouldBeComparable(actual, other, s, err))
	}
	return c, nil
}

func checkOrderOperands(info failure.Info, actual, other any) error {
	if isNil(actual) {
		return actualIsNull(info)
	}
	if isNil(other) {
		return failure.IllegalArgument("other", "The value to compare actual with should not be null")
	}
	return nil
}

func assertOrder(info failure.Info, actual, other any, ok func(int) bool, msg func(failure.Info) failure.Message) error {
	if err := checkOrderOperands(info, actual, other); err != nil {
		return err
	}
	c, err := compare(info, actual, other)
	if err != nil {
		return err
	}
	if ok(c) {
		return nil
	}
	return failure.Fail(info, msg(info))
}

func AssertLessThan(info failure.Info, actual, other any) error {
	return assertOrder(info, actual, other, func(c int) bool { return c < 0 }, func(info failure.Info) failure.Message {
		return failure.ShouldBeLess(actual, other, info.Comparison())
	})
}

func AssertLessThanOrEqual(info failure.Info, actual, other any) error {
	return assertOrder(info, actual, other, func(c int) bool { return c <= 0 }, func(info failure.Info) failure.Message {
		return failure.ShouldBeLessOrEqual(actual, other, info.Comparison())
	})
}

func AssertGreaterThan(info failure.Info, actual, other any) error {
	return assertOrder(info, actual, other, func(c int) bool { return c > 0 }, func(info failure.Info) failure.Message {
		return failure.ShouldBeGreater(actual, other, info.Comparison())
	})
}

func AssertGreaterThanOrEqual(info failure.Info, actual, other any) error {
	return assertOrder(info, actual, other, func(c int) bool { return c >= 0 }, func(info failure.Info) failure.Message {
		return failure.ShouldBeGreaterOrEqual(actual, other, info.Comparison())
	})
}

// AssertIsBetween checks that actual lies in the range from start to end,
// each bound inclusive or exclusive.
func AssertIsBetween(info failure.Info, actual, start, end any, inclusiveStart, inclusiveEnd bool) error {
	if isNil(start) {
		return failure.IllegalArgument("start", "The start range to compare actual with should not be null")
	}
	if isNil(end) {
		return failure.IllegalArgument("end", "The end range to compare actual with should not be null")
	}
	if isNil(actual) {
		return actualIsNull(info)
	}

	bounds, err := compare(info, end, start)
	if err != nil {
		return err
	}
	if bounds < 0 {
		return failure.IllegalArgument("end", "The end value <%s> must not be less than the start value <%s>!",
			info.Format(end), info.Format(start))
	}

	fromStart, err := compare(info, actual, start)
	if err != nil {
		return err
	}
	toEnd, err := compare(info, actual, end)
	if err != nil {
		return err
	}

	afterStart := fromStart > 0 || (inclusiveStart && fromStart == 0)
	beforeEnd := toEnd < 0 || (inclusiveEnd && toEnd == 0)
	if afterStart && beforeEnd {
		return nil
	}
	return failure.Fail(info, failure.ShouldBeBetween(actual, start, end, inclusiveStart, inclusiveEnd, info.Comparison()))
}

// AssertIsCloseTo checks that actual is within offset of expected, bounds
// included.
func AssertIsCloseTo[N Number](info failure.Info, actual, expected, offset N) error {
	if offset < 0 {
		return failure.IllegalArgument("offset", "An offset value should be greater than or equal to zero")
	}
	var diff N
	if actual > expected {
		diff = actual - expected
	} else {
		diff = expected - actual
	}
	// NaN differences never pass.
	if diff <= offset {
		return nil
	}
	return failure.Fail(info, failure.ShouldBeCloseTo(actual, expected, offset, diff))
}
