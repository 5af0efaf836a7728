package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

var (
	errMalformedJSON = errors.New("malformed JSON document")
	bracketIndex     = regexp.MustCompile(`\[(\d+)\]`)
)

// JSONPath converts array bracket notation to gjson dot notation,
// e.g. "[0].id" -> "0.id", "items[0].tags[1]" -> "items.0.tags.1".
func JSONPath(path string) string {
	result := bracketIndex.ReplaceAllString(path, ".$1")
	return strings.TrimPrefix(result, ".")
}

// document is what failure messages print for a JSON actual.
func document(raw []byte) any {
	return string(raw)
}

func parseJSON(info failure.Info, raw []byte) (gjson.Result, error) {
	if raw == nil {
		return gjson.Result{}, actualIsNull(info)
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, failure.Fail(info, failure.ShouldBeValidJSON(document(raw), errMalformedJSON))
	}
	return gjson.ParseBytes(raw), nil
}

// DecodeJSON returns the decoded document, failing when it is malformed.
func DecodeJSON(info failure.Info, raw []byte) (any, error) {
	doc, err := parseJSON(info, raw)
	if err != nil {
		return nil, err
	}
	return doc.Value(), nil
}

func AssertValidJSON(info failure.Info, raw []byte) error {
	_, err := parseJSON(info, raw)
	return err
}

// LookupJSON returns the value at path, and whether it exists. The value is
// decoded the way encoding/json decodes into an interface: float64, string,
// bool, nil, []any and map[string]any.
func LookupJSON(info failure.Info, raw []byte, path string) (any, bool, error) {
	if path == "" {
		return nil, false, failure.IllegalArgument("path", "The JSON path should not be empty")
	}
	doc, err := parseJSON(info, raw)
	if err != nil {
		return nil, false, err
	}
	result := doc.Get(JSONPath(path))
	if !result.Exists() {
		return nil, false, nil
	}
	return result.Value(), true, nil
}

func AssertHasJSONPath(info failure.Info, raw []byte, path string) error {
	_, ok, err := LookupJSON(info, raw, path)
	if err != nil {
		return err
	}
	if !ok {
		return failure.Fail(info, failure.ShouldHaveJSONPath(document(raw), path))
	}
	return nil
}

func AssertDoesNotHaveJSONPath(info failure.Info, raw []byte, path string) error {
	value, ok, err := LookupJSON(info, raw, path)
	if err != nil {
		return err
	}
	if ok {
		return failure.Fail(info, failure.ShouldNotHaveJSONPath(document(raw), path, value))
	}
	return nil
}

// JSONType names the JSON type of a decoded value: null, boolean, number,
// string, array or object.
func JSONType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

// AssertJSONPathType checks the JSON type of the value at path.
func AssertJSONPathType(info failure.Info, raw []byte, path, expected string) error {
	switch expected {
	case "null", "boolean", "number", "string", "array", "object":
	default:
		return failure.IllegalArgument("type", "Unknown JSON type %q", expected)
	}
	value, ok, err := LookupJSON(info, raw, path)
	if err != nil {
		return err
	}
	if !ok {
		return failure.Fail(info, failure.ShouldHaveJSONPath(document(raw), path))
	}
	if got := JSONType(value); got != expected {
		return failure.Fail(info, failure.ShouldHaveJSONType(document(raw), path, expected, got))
	}
	return nil
}

// AssertJSONEqual decodes actual and expected and compares the documents,
// so formatting and key order do not matter.
func AssertJSONEqual(info failure.Info, raw []byte, expected string) error {
	var want any
	if err := json.Unmarshal([]byte(expected), &want); err != nil {
		return failure.IllegalArgument("expected", "The expected JSON document is malformed: %v", err)
	}
	doc, err := parseJSON(info, raw)
	if err != nil {
		return err
	}
	s := info.Comparison()
	if s.AreEqual(doc.Value(), want) {
		return nil
	}
	return failure.Fail(info, failure.ShouldBeEqual(document(raw), expected, s))
}

// AssertJSONPathValue checks the value at path against expected, both
// compared as decoded JSON with the description's strategy.
func AssertJSONPathValue(info failure.Info, raw []byte, path string, expected any) error {
	value, ok, err := LookupJSON(info, raw, path)
	if err != nil {
		return err
	}
	if !ok {
		return failure.Fail(info, failure.ShouldHaveJSONPath(document(raw), path))
	}
	s := info.Comparison()
	if s.AreEqual(value, normalizeExpected(expected)) {
		return nil
	}
	return failure.Fail(info, failure.ShouldHaveJSONPathValue(document(raw), path, value, expected, s))
}

// normalizeExpected decodes expected the way gjson decodes path values so
// 1 matches the number 1.0.
func normalizeExpected(expected any) any {
	data, err := json.Marshal(expected)
	if err != nil {
		return expected
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return expected
	}
	return v
}

// AssertMatchesJSONSchema validates actual against schema, given either
// inline as a JSON object or as a path to a schema file. A schema that
// cannot be read or compiled fails the assertion with the cause.
func AssertMatchesJSONSchema(info failure.Info, raw []byte, schema string) error {
	if strings.TrimSpace(schema) == "" {
		return failure.IllegalArgument("schema", "The JSON schema should not be empty")
	}
	if _, err := parseJSON(info, raw); err != nil {
		return err
	}

	schemaLoader, err := schemaLoader(schema)
	if err != nil {
		return failure.Fail(info, failure.ShouldMatchJSONSchema(document(raw), []string{err.Error()}))
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return failure.Fail(info, failure.ShouldMatchJSONSchema(document(raw),
			[]string{fmt.Sprintf("schema validation error: %v", err)}))
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return failure.Fail(info, failure.ShouldMatchJSONSchema(document(raw), violations))
}

func schemaLoader(schema string) (gojsonschema.JSONLoader, error) {
	trimmed := strings.TrimSpace(schema)
	if strings.HasPrefix(trimmed, "{") {
		return gojsonschema.NewStringLoader(trimmed), nil
	}

	path, err := filepath.Abs(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return gojsonschema.NewBytesLoader(data), nil
}
