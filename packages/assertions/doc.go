// Package assertions provides fluent assertion chains for Go tests.
//
// A chain starts from an entry point and reports to a TestingT:
//
//	assertions.That(t, user).As("user %d", id).IsNotNil().HasFieldOrPropertyWithValue("Name", "Frodo")
//	assertions.ThatString(t, body).StartsWith("{").Contains(`"id"`)
//	assertions.ThatOptional(t, found).Get().IsEqualTo(want)
//	assertions.ThatJSON(t, body).HasPathWithValue("items[0].id", 10)
//
// Families:
//   - Objects (That): equality, nil checks, membership, types, fields and
//     properties, predicates, ordering
//   - Strings (ThatString), numbers (ThatNumber) and instants (ThatTime)
//   - Optionals (ThatOptional) and sync/atomic values (ThatAtomicInt64, ...)
//   - URLs (ThatURL) and JSON documents (ThatJSON)
//
// Every chain shares the continuations of Chain: As, WithFailMessage,
// UsingComparator and WithRepresentation. A failed assertion calls t.Fatal
// with a *failure.AssertionError. An invalid argument panics with a
// *failure.IllegalArgumentError. Chains created from Raise panic with the
// assertion error instead; recover it with failure.Catch.
//
// Defaults come from an .affirm.yaml file in the package directory and
// AFFIRM_* environment variables. Configure scopes other Settings to a test.
package assertions
