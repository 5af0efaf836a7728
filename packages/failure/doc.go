// Package failure describes and renders assertion failures.
//
// It holds three things:
//   - Info, the immutable failure description attached to an assertion chain
//     (label, overriding message, representation, comparison, formatter)
//   - Message templates and the Build function rendering them under an Info
//   - The failure signals: AssertionError and IllegalArgumentError
//
// Message factories (ShouldBeEqual, ShouldBePresent, ...) live next to the
// builder so every family validator shares the same wording.
package failure
