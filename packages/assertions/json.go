package assertions

import (
	"github.com/abdul-hamid-achik/affirm/packages/comparison"
	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/validators"
)

// JSONAssert holds assertions on a JSON document. Paths use gjson syntax and
// accept bracket indexes, as in "items[0].id".
type JSONAssert struct {
	*Chain[*JSONAssert, []byte]
}

func ThatJSON(t TestingT, actual string) *JSONAssert {
	return ThatJSONBytes(t, []byte(actual))
}

// ThatJSONBytes starts a chain on an encoded document; nil means no document.
func ThatJSONBytes(t TestingT, actual []byte) *JSONAssert {
	a := &JSONAssert{}
	a.Chain = NewChain(t, actual, a)
	a.setDefaultComparison(comparison.JSON)
	return a
}

func newJSONAssert(t TestingT, s *Settings, info failure.Info, actual []byte) *JSONAssert {
	a := &JSONAssert{}
	a.Chain = deriveChain(t, s, info, actual, a)
	a.adoptDefaultComparison(comparison.JSON)
	return a
}

func (a *JSONAssert) IsValid() *JSONAssert {
	a.t.Helper()
	return a.Check(validators.AssertValidJSON(a.info, a.actual))
}

// IsEqualTo compares the decoded documents, ignoring formatting and key
// order.
func (a *JSONAssert) IsEqualTo(expected string) *JSONAssert {
	a.t.Helper()
	return a.Check(validators.AssertJSONEqual(a.info, a.actual, expected))
}

func (a *JSONAssert) HasPath(path string) *JSONAssert {
	a.t.Helper()
	return a.Check(validators.AssertHasJSONPath(a.info, a.actual, path))
}

func (a *JSONAssert) DoesNotHavePath(path string) *JSONAssert {
	a.t.Helper()
	return a.Check(validators.AssertDoesNotHaveJSONPath(a.info, a.actual, path))
}

// HasPathWithType checks the JSON type at path: null, boolean, number,
// string, array or object.
func (a *JSONAssert) HasPathWithType(path, typ string) *JSONAssert {
	a.t.Helper()
	return a.Check(validators.AssertJSONPathType(a.info, a.actual, path, typ))
}

// HasPathWithValue compares the value at path with expected after both are
// decoded as JSON, so 1 matches 1.0.
func (a *JSONAssert) HasPathWithValue(path string, expected any) *JSONAssert {
	a.t.Helper()
	return a.Check(validators.AssertJSONPathValue(a.info, a.actual, path, expected))
}

// MatchesSchema validates the document against a JSON schema, given inline
// or as a file path.
func (a *JSONAssert) MatchesSchema(schema string) *JSONAssert {
	a.t.Helper()
	return a.Check(validators.AssertMatchesJSONSchema(a.info, a.actual, schema))
}

// Path checks that path exists and returns a chain on its decoded value.
func (a *JSONAssert) Path(path string) *ObjectAssert[any] {
	a.t.Helper()
	value, ok, err := validators.LookupJSON(a.info, a.actual, path)
	if err == nil && !ok {
		err = validators.AssertHasJSONPath(a.info, a.actual, path)
	}
	if !a.passed(err) {
		value = nil
	}
	return subChain(a.Chain, value)
}

// MatchesSnapshot compares the decoded document with the snapshot stored
// under name for the running test.
func (a *JSONAssert) MatchesSnapshot(name string) *JSONAssert {
	a.t.Helper()
	doc, err := validators.DecodeJSON(a.info, a.actual)
	if err != nil {
		return a.Check(err)
	}
	return a.Check(matchSnapshot(a.t, a.settings, a.info, name, doc))
}
