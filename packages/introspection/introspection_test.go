package introspection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type data struct {
	field1 any
	field2 any
	field3 any
}

func (d *data) Field3() any { return "bar" }

type person struct {
	Name    string
	Age     int
	Address *address
	nick    string
}

func (p person) GetNick() string { return "@" + p.nick }

type address struct {
	City string
}

type panicky struct {
	value string
}

func (panicky) Value() string { panic("boom") }

func TestReflect_FieldsAndProperties(t *testing.T) {
	t.Run("accessor takes precedence over field", func(t *testing.T) {
		props, err := Default.FieldsAndProperties(data{field1: "foo"})
		require.NoError(t, err)
		require.Len(t, props, 3)

		assert.Equal(t, Property{Name: "field1", Value: "foo"}, props[0])
		assert.Equal(t, Property{Name: "field2", Value: nil, Nil: true}, props[1])
		assert.Equal(t, Property{Name: "field3", Value: "bar"}, props[2])
	})

	t.Run("pointer to struct", func(t *testing.T) {
		props, err := Default.FieldsAndProperties(&person{Name: "ada", nick: "a"})
		require.NoError(t, err)
		require.Len(t, props, 4)
		assert.Equal(t, "ada", props[0].Value)
		assert.True(t, props[2].Nil)
		assert.Equal(t, "@a", props[3].Value)
	})

	t.Run("panicking accessor falls back to field", func(t *testing.T) {
		props, err := Default.FieldsAndProperties(panicky{value: "raw"})
		require.NoError(t, err)
		assert.Equal(t, "raw", props[0].Value)
	})

	t.Run("non struct", func(t *testing.T) {
		_, err := Default.FieldsAndProperties(42)
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("nil", func(t *testing.T) {
		var p *person
		_, err := Default.FieldsAndProperties(p)
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestReflect_Lookup(t *testing.T) {
	p := person{Name: "ada", Age: 36, Address: &address{City: "London"}, nick: "countess"}

	tests := []struct {
		name string
		path string
		want any
	}{
		{"exported field", "Name", "ada"},
		{"case insensitive field", "age", 36},
		{"nested path", "Address.City", "London"},
		{"nested lower case", "address.city", "London"},
		{"property", "nick", "@countess"},
		{"property by method name", "Nick", "@countess"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default.Lookup(p, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("map entry", func(t *testing.T) {
		got, err := Default.Lookup(map[string]any{"user": map[string]any{"id": 7}}, "user.id")
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Default.Lookup(p, "email")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("through nil", func(t *testing.T) {
		_, err := Default.Lookup(person{}, "Address.City")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := Default.Lookup(p, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
