package validators

import (
	"net/url"
	"slices"

	"github.com/abdul-hamid-achik/affirm/packages/failure"
)

// URLComponent names a structural part of a URL.
type URLComponent int

const (
	Scheme URLComponent = iota
	Host
	Port
	Path
	Query
	Fragment
	UserInfo
	Authority
)

func (c URLComponent) String() string {
	switch c {
	case Scheme:
		return "scheme"
	case Host:
		return "host"
	case Port:
		return "port"
	case Path:
		return "path"
	case Query:
		return "query"
	case Fragment:
		return "fragment"
	case UserInfo:
		return "user info"
	case Authority:
		return "authority"
	}
	return "component"
}

// Component extracts a component from u. Absent components are empty.
func Component(u *url.URL, c URLComponent) string {
	switch c {
	case Scheme:
		return u.Scheme
	case Host:
		return u.Hostname()
	case Port:
		return u.Port()
	case Path:
		return u.Path
	case Query:
		return u.RawQuery
	case Fragment:
		return u.Fragment
	case UserInfo:
		if u.User == nil {
			return ""
		}
		return u.User.String()
	case Authority:
		return u.Host
	}
	return ""
}

// ParseURL parses raw, failing the assertion when it is not a valid URL.
func ParseURL(info failure.Info, raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, failure.Fail(info, failure.ShouldBeValidURL(raw, err))
	}
	return u, nil
}

// AssertHasURLComponent checks one component of actual. An empty expected
// value means the component is absent, so no user info and empty user info
// are the same.
func AssertHasURLComponent(info failure.Info, actual *url.URL, c URLComponent, expected string) error {
	if actual == nil {
		return actualIsNull(info)
	}
	got := Component(actual, c)
	if got == expected {
		return nil
	}
	kind := failure.KindShouldHaveURLComponent
	if c == UserInfo {
		kind = failure.KindShouldHaveUserInfo
	}
	return failure.Fail(info, failure.ShouldHaveURLComponent(kind, c.String(), actual, expected, got))
}

func AssertHasUserInfo(info failure.Info, actual *url.URL, expected string) error {
	return AssertHasURLComponent(info, actual, UserInfo, expected)
}

// AssertHasParameter checks that the query parameter name is present and,
// when values are given, that it carries each of them.
func AssertHasParameter(info failure.Info, actual *url.URL, name string, values ...string) error {
	if name == "" {
		return failure.IllegalArgument("name", "The parameter name should not be empty")
	}
	if actual == nil {
		return actualIsNull(info)
	}
	query := actual.Query()
	got, ok := query[name]
	if !ok {
		return failure.Fail(info, failure.ShouldHaveParameterNamed(actual, name))
	}
	for _, want := range values {
		if !slices.Contains(got, want) {
			return failure.Fail(info, failure.ShouldHaveParameter(actual, name, want, got))
		}
	}
	return nil
}

func AssertDoesNotHaveParameter(info failure.Info, actual *url.URL, name string) error {
	if name == "" {
		return failure.IllegalArgument("name", "The parameter name should not be empty")
	}
	if actual == nil {
		return actualIsNull(info)
	}
	if got, ok := actual.Query()[name]; ok {
		return failure.Fail(info, failure.ShouldNotHaveParameter(actual, name, got))
	}
	return nil
}
