package validators

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userJSON = []byte(`{
	"id": 1,
	"name": "John",
	"active": true,
	"manager": null,
	"tags": ["admin", "ops"],
	"items": [{"id": 10}, {"id": 11}]
}`)

func TestJSONPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[0].id", "0.id"},
		{"items[0].tags[1]", "items.0.tags.1"},
		{"data.user.name", "data.user.name"},
		{"[0]", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, JSONPath(tt.input))
		})
	}
}

func TestAssertValidJSON(t *testing.T) {
	info := failure.Info{}
	assert.NoError(t, AssertValidJSON(info, userJSON))

	err := requireFailure(t, AssertValidJSON(info, []byte(`{"id":`)))
	assert.Equal(t, failure.KindShouldBeValidJSON, err.Kind)

	err = requireFailure(t, AssertValidJSON(info, nil))
	assert.ErrorIs(t, err, failure.ErrActualIsNull)
}

func TestLookupJSON(t *testing.T) {
	info := failure.Info{}

	tests := []struct {
		path string
		want any
	}{
		{"id", float64(1)},
		{"name", "John"},
		{"tags[1]", "ops"},
		{"items[1].id", float64(11)},
		{"tags.#", float64(2)},
		{"manager", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok, err := LookupJSON(info, userJSON, tt.path)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok, err := LookupJSON(info, userJSON, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = LookupJSON(info, userJSON, "")
	assert.ErrorIs(t, err, failure.ErrIllegalArgument)
}

func TestAssertJSONPaths(t *testing.T) {
	info := failure.Info{}

	assert.NoError(t, AssertHasJSONPath(info, userJSON, "items[0].id"))
	err := requireFailure(t, AssertHasJSONPath(info, userJSON, "email"))
	assert.Equal(t, failure.KindShouldHaveJSONPath, err.Kind)

	assert.NoError(t, AssertDoesNotHaveJSONPath(info, userJSON, "email"))
	err = requireFailure(t, AssertDoesNotHaveJSONPath(info, userJSON, "name"))
	assert.Contains(t, err.Message, "but found:\n  \"John\"")
}

func TestAssertJSONPathType(t *testing.T) {
	info := failure.Info{}

	tests := []struct {
		path     string
		expected string
	}{
		{"id", "number"},
		{"name", "string"},
		{"active", "boolean"},
		{"manager", "null"},
		{"tags", "array"},
		{"items[0]", "object"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.NoError(t, AssertJSONPathType(info, userJSON, tt.path, tt.expected))
		})
	}

	err := requireFailure(t, AssertJSONPathType(info, userJSON, "id", "string"))
	assert.Equal(t, "number", err.Actual)
	assert.Equal(t, "string", err.Expected)

	requireIllegal(t, AssertJSONPathType(info, userJSON, "id", "integer"), `Unknown JSON type "integer"`)
}

const userSchema = `{
	"type": "object",
	"required": ["id", "name"],
	"properties": {
		"id": {"type": "integer"},
		"name": {"type": "string"}
	}
}`

func TestAssertMatchesJSONSchema(t *testing.T) {
	info := failure.Info{}

	t.Run("inline schema", func(t *testing.T) {
		assert.NoError(t, AssertMatchesJSONSchema(info, userJSON, userSchema))

		err := requireFailure(t, AssertMatchesJSONSchema(info, []byte(`{"id": "x"}`), userSchema))
		assert.Equal(t, failure.KindShouldMatchJSONSchema, err.Kind)
		assert.Contains(t, err.Message, "name is required")
		assert.Contains(t, err.Message, "id: Invalid type")
	})

	t.Run("schema file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "user.schema.json")
		require.NoError(t, os.WriteFile(path, []byte(userSchema), 0644))

		assert.NoError(t, AssertMatchesJSONSchema(info, userJSON, path))
	})

	t.Run("missing schema file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.json")
		err := requireFailure(t, AssertMatchesJSONSchema(info, userJSON, path))
		assert.Contains(t, err.Message, "failed to read schema file")
	})

	t.Run("empty schema", func(t *testing.T) {
		requireIllegal(t, AssertMatchesJSONSchema(info, userJSON, " "), "The JSON schema should not be empty")
	})
}

func TestAssertJSONPathValue(t *testing.T) {
	info := failure.Info{}

	assert.NoError(t, AssertJSONPathValue(info, userJSON, "name", "John"))
	assert.NoError(t, AssertJSONPathValue(info, userJSON, "items[1].id", 11))
	assert.NoError(t, AssertJSONPathValue(info, userJSON, "tags", []string{"admin", "ops"}))
	assert.NoError(t, AssertJSONPathValue(info, userJSON, "manager", nil))

	err := requireFailure(t, AssertJSONPathValue(info, userJSON, "name", "Jane"))
	assert.Equal(t, failure.KindShouldHaveJSONPathValue, err.Kind)
	assert.Contains(t, err.Message, `"Jane"`)

	err = requireFailure(t, AssertJSONPathValue(info, userJSON, "missing", 1))
	assert.Equal(t, failure.KindShouldHaveJSONPath, err.Kind)
}

func TestAssertJSONEqual(t *testing.T) {
	info := failure.Info{}

	assert.NoError(t, AssertJSONEqual(info, []byte(`{"a": 1, "b": [true, null]}`), `{"b":[true,null],"a":1.0}`))

	err := requireFailure(t, AssertJSONEqual(info, []byte(`{"a": 1}`), `{"a": 2}`))
	assert.Equal(t, failure.KindShouldBeEqual, err.Kind)

	requireIllegal(t, AssertJSONEqual(info, []byte(`{}`), `{`),
		"The expected JSON document is malformed: unexpected end of JSON input")
}
