package assertions

import (
	"net/url"

	"github.com/abdul-hamid-achik/affirm/packages/validators"
)

// URLAssert holds assertions on the components of a URL.
type URLAssert struct {
	*Chain[*URLAssert, *url.URL]
	raw    string
	parsed bool
}

func ThatURL(t TestingT, actual *url.URL) *URLAssert {
	a := &URLAssert{parsed: true}
	a.Chain = NewChain(t, actual, a)
	return a
}

// ThatURLString starts a chain on a URL given as text. Text that does not
// parse fails the first assertion made.
func ThatURLString(t TestingT, actual string) *URLAssert {
	a := &URLAssert{raw: actual}
	a.Chain = NewChain[*URLAssert, *url.URL](t, nil, a)
	return a
}

func (a *URLAssert) resolve() (*url.URL, error) {
	if a.parsed {
		return a.actual, nil
	}
	u, err := validators.ParseURL(a.info, a.raw)
	if err != nil {
		return nil, err
	}
	a.actual, a.parsed = u, true
	return u, nil
}

func (a *URLAssert) check(assert func(u *url.URL) error) *URLAssert {
	a.t.Helper()
	u, err := a.resolve()
	if err != nil {
		return a.Check(err)
	}
	return a.Check(assert(u))
}

func (a *URLAssert) component(c validators.URLComponent, expected string) *URLAssert {
	a.t.Helper()
	return a.check(func(u *url.URL) error {
		return validators.AssertHasURLComponent(a.info, u, c, expected)
	})
}

func (a *URLAssert) HasScheme(expected string) *URLAssert {
	a.t.Helper()
	return a.component(validators.Scheme, expected)
}

// HasHost checks the host name, without the port.
func (a *URLAssert) HasHost(expected string) *URLAssert {
	a.t.Helper()
	return a.component(validators.Host, expected)
}

// HasPort checks the explicit port; "" means none.
func (a *URLAssert) HasPort(expected string) *URLAssert {
	a.t.Helper()
	return a.component(validators.Port, expected)
}

func (a *URLAssert) HasNoPort() *URLAssert {
	a.t.Helper()
	return a.component(validators.Port, "")
}

func (a *URLAssert) HasPath(expected string) *URLAssert {
	a.t.Helper()
	return a.component(validators.Path, expected)
}

// HasQuery checks the raw, still encoded query.
func (a *URLAssert) HasQuery(expected string) *URLAssert {
	a.t.Helper()
	return a.component(validators.Query, expected)
}

func (a *URLAssert) HasNoQuery() *URLAssert {
	a.t.Helper()
	return a.component(validators.Query, "")
}

func (a *URLAssert) HasFragment(expected string) *URLAssert {
	a.t.Helper()
	return a.component(validators.Fragment, expected)
}

func (a *URLAssert) HasNoFragment() *URLAssert {
	a.t.Helper()
	return a.component(validators.Fragment, "")
}

// HasUserInfo checks "user" or "user:password". An empty expected value
// matches a URL without user info.
func (a *URLAssert) HasUserInfo(expected string) *URLAssert {
	a.t.Helper()
	return a.check(func(u *url.URL) error {
		return validators.AssertHasUserInfo(a.info, u, expected)
	})
}

func (a *URLAssert) HasNoUserInfo() *URLAssert {
	a.t.Helper()
	return a.HasUserInfo("")
}

// HasAuthority checks host and port together, e.g. "example.com:8080".
func (a *URLAssert) HasAuthority(expected string) *URLAssert {
	a.t.Helper()
	return a.component(validators.Authority, expected)
}

// HasParameter checks that the query carries name and, when values are
// given, each of them.
func (a *URLAssert) HasParameter(name string, values ...string) *URLAssert {
	a.t.Helper()
	return a.check(func(u *url.URL) error {
		return validators.AssertHasParameter(a.info, u, name, values...)
	})
}

func (a *URLAssert) HasNoParameter(name string) *URLAssert {
	a.t.Helper()
	return a.check(func(u *url.URL) error {
		return validators.AssertDoesNotHaveParameter(a.info, u, name)
	})
}
