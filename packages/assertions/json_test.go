package assertions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/affirm/packages/comparison"
	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderJSON = `{
	"id": 7,
	"status": "paid",
	"customer": {"name": "Ada", "email": null},
	"items": [{"sku": "A-1", "qty": 2}, {"sku": "B-2", "qty": 1}]
}`

const orderSchema = `{
	"type": "object",
	"required": ["id", "status"],
	"properties": {
		"id": {"type": "integer"},
		"status": {"enum": ["new", "paid", "shipped"]}
	}
}`

func TestJSONAssert(t *testing.T) {
	ThatJSON(raise(t), orderJSON).
		IsValid().
		IsEqualTo(orderJSON).
		HasPath("customer.name").
		HasPath("items[1].sku").
		DoesNotHavePath("customer.phone").
		HasPathWithType("customer.email", "null").
		HasPathWithType("items", "array").
		HasPathWithValue("id", 7).
		HasPathWithValue("items[0]", map[string]any{"sku": "A-1", "qty": 2}).
		MatchesSchema(orderSchema)

	ThatJSONBytes(raise(t), []byte(`{"b": [1, 2], "a": true}`)).IsEqualTo(`{"a":true,"b":[1.0,2.0]}`)

	tests := []struct {
		name string
		fn   func(TestingT)
		kind string
	}{
		{"malformed", func(tt TestingT) { ThatJSON(tt, `{"id":`).IsValid() }, failure.KindShouldBeValidJSON},
		{"not equal", func(tt TestingT) { ThatJSON(tt, `{"id": 1}`).IsEqualTo(`{"id": 2}`) }, failure.KindShouldBeEqual},
		{"missing path", func(tt TestingT) { ThatJSON(tt, orderJSON).HasPath("total") }, failure.KindShouldHaveJSONPath},
		{"unexpected path", func(tt TestingT) { ThatJSON(tt, orderJSON).DoesNotHavePath("status") }, failure.KindShouldNotHaveJSONPath},
		{"type", func(tt TestingT) { ThatJSON(tt, orderJSON).HasPathWithType("id", "string") }, failure.KindShouldHaveJSONType},
		{"value", func(tt TestingT) { ThatJSON(tt, orderJSON).HasPathWithValue("status", "new") }, failure.KindShouldHaveJSONPathValue},
		{"schema", func(tt TestingT) { ThatJSON(tt, `{"id": "x"}`).MatchesSchema(orderSchema) }, failure.KindShouldMatchJSONSchema},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catchFailure(t, func() { tt.fn(raise(t)) })
			assert.Equal(t, tt.kind, err.Kind)
		})
	}

	t.Run("nil document", func(t *testing.T) {
		err := catchFailure(t, func() { ThatJSONBytes(raise(t), nil).IsValid() })
		assert.ErrorIs(t, err, failure.ErrActualIsNull)
	})

	t.Run("unknown type", func(t *testing.T) {
		catchIllegal(t, func() { ThatJSON(raise(t), orderJSON).HasPathWithType("id", "integer") })
	})
}

func TestJSONAssert_HasPathWithValueMessage(t *testing.T) {
	err := catchFailure(t, func() { ThatJSON(raise(t), `{"status":"old"}`).HasPathWithValue("status", "new") })
	assert.Equal(t,
		"\nExpecting value at path \"status\" of JSON document:\n  \"{\"status\":\"old\"}\"\nto be:\n  \"new\"\nbut was:\n  \"old\"\nwhen comparing values using JSON equivalence",
		err.Message)
}

func TestStringAssert_AsJSONComparator(t *testing.T) {
	t.Run("keeps a custom comparator", func(t *testing.T) {
		a := ThatString(raise(t), `{"a":1}`).UsingComparator(comparison.AlwaysEqual).AsJSON()
		assert.Equal(t, comparison.AlwaysEqual, a.Info().Comparison())
		a.IsEqualTo(`{"a":2}`).HasPathWithValue("a", 2)

		a.UsingDefaultComparator()
		assert.Equal(t, comparison.JSON, a.Info().Comparison())
	})

	t.Run("standard becomes JSON", func(t *testing.T) {
		a := ThatString(raise(t), `{"a": 1}`).As("doc").AsJSON()
		assert.Equal(t, comparison.JSON, a.Info().Comparison())
		a.HasPathWithValue("a", 1)

		err := catchFailure(t, func() { a.HasPathWithValue("a", 2) })
		assert.Contains(t, err.Message, "[doc] ")
	})

	t.Run("marks helper", func(t *testing.T) {
		r := &recorder{}
		ThatString(Configure(r, testSettings(t)), `{}`).AsJSON()
		assert.Equal(t, 1, r.helpers)
	})
}

func TestJSONAssert_Path(t *testing.T) {
	ThatJSON(raise(t), orderJSON).Path("customer.name").IsEqualTo("Ada")
	ThatJSON(raise(t), orderJSON).Path("items[0].qty").IsEqualTo(2)
	ThatJSON(raise(t), orderJSON).Path("customer.email").IsNil()

	err := catchFailure(t, func() { ThatJSON(raise(t), orderJSON).As("order").Path("total") })
	assert.Equal(t, failure.KindShouldHaveJSONPath, err.Kind)
	assert.Contains(t, err.Message, "[order] ")

	err = catchFailure(t, func() { ThatJSON(raise(t), orderJSON).As("order").Path("status").IsEqualTo("new") })
	assert.NotContains(t, err.Message, "[order]")
}

func TestJSONAssert_SchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(orderSchema), 0644))

	ThatJSON(raise(t), orderJSON).MatchesSchema(path)

	err := catchFailure(t, func() {
		ThatJSON(raise(t), orderJSON).MatchesSchema(filepath.Join(t.TempDir(), "missing.json"))
	})
	assert.Contains(t, err.Message, "failed to read schema file")
}

func TestJSONAssert_MatchesSnapshot(t *testing.T) {
	m := snapshot.NewManager(t.TempDir(), true)
	r := &recorder{name: "TestOrders"}
	tt := Configure(r, testSettings(t, WithSnapshots(m)))

	ThatJSON(tt, orderJSON).MatchesSnapshot("order")
	require.Empty(t, r.failures)

	reader := Configure(r, testSettings(t, WithSnapshots(snapshot.NewManager(m.Dir(), false))))
	ThatJSON(reader, `{"items":[{"sku":"A-1","qty":2},{"sku":"B-2","qty":1}],"customer":{"email":null,"name":"Ada"},"status":"paid","id":7}`).
		MatchesSnapshot("order")
	assert.Empty(t, r.failures)

	ThatJSON(reader, `{"id": 8}`).MatchesSnapshot("order")
	assert.Len(t, r.failures, 1)
}
