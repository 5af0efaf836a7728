package assertions

import (
	"testing"
	"time"

	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/stretchr/testify/assert"
)

func TestTimeAssert(t *testing.T) {
	actual := time.Date(2024, 1, 1, 3, 0, 5, 0, time.UTC)
	earlier := actual.Add(-time.Second)
	later := actual.Add(time.Second)

	ThatTime(raise(t), actual).
		IsEqualTo(actual.In(time.FixedZone("UTC+2", 2*60*60))).
		IsAfter(earlier).
		IsAfterOrEqualTo(actual).
		IsBefore(later).
		IsBeforeOrEqualTo(actual).
		IsBetween(earlier, actual).
		IsStrictlyBetween(earlier, later).
		IsCloseTo(later, time.Second)

	err := catchFailure(t, func() { ThatTime(raise(t), later).IsBefore(actual) })
	assert.Equal(t,
		"\nExpecting:\n  <2024-01-01T03:00:06Z>\nto be strictly before:\n  <2024-01-01T03:00:05Z>\n",
		err.Message)

	err = catchFailure(t, func() { ThatTime(raise(t), actual).IsStrictlyBetween(actual, later) })
	assert.Equal(t, failure.KindShouldBeBetween, err.Kind)

	err = catchFailure(t, func() { ThatTime(raise(t), actual).IsCloseTo(later.Add(time.Second), time.Second) })
	assert.Contains(t, err.Message, "difference was 2s")

	t.Run("nil actual", func(t *testing.T) {
		err := catchFailure(t, func() { ThatTimePtr(raise(t), nil).IsBefore(actual) })
		assert.ErrorIs(t, err, failure.ErrActualIsNull)
	})
}

func TestTimeAssert_StringBounds(t *testing.T) {
	actual := time.Date(2024, 1, 1, 3, 0, 5, 0, time.UTC)

	ThatTime(raise(t), actual).
		IsBeforeString("2024-01-01T03:00:06Z").
		IsAfterString("2024-01-01").
		IsBeforeOrEqualToString("2024-01-01 03:00:05").
		IsAfterOrEqualToString("2024-01-01T03:00:05.000Z")

	err := catchFailure(t, func() { ThatTime(raise(t), actual).IsAfterString("2024-01-02") })
	assert.Equal(t, failure.KindShouldBeAfter, err.Kind)

	tests := []struct {
		name  string
		bound string
		want  string
	}{
		{"empty", "", "The time to compare actual with should not be empty"},
		{"blank", "  ", "The time to compare actual with should not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ie := catchIllegal(t, func() { ThatTime(raise(t), actual).IsBeforeString(tt.bound) })
			assert.Equal(t, tt.want, ie.Message)
		})
	}

	t.Run("unparsable", func(t *testing.T) {
		ie := catchIllegal(t, func() { ThatTime(raise(t), actual).IsBeforeString("yesterday") })
		assert.Contains(t, ie.Message, `Failed to parse "yesterday"`)
	})

	t.Run("configured layouts", func(t *testing.T) {
		tt := raise(t, WithTimeLayouts("02/01/2006"))
		ThatTime(tt, actual).IsBeforeString("02/01/2024")

		ie := catchIllegal(t, func() { ThatTime(tt, actual).IsBeforeString("2024-01-02") })
		assert.Contains(t, ie.Message, "[02/01/2006]")
	})
}
