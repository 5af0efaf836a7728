// Package representation formats values for failure messages.
//
// Three strategies are provided:
//   - Standard: platform-natural formatting (quoted strings, sorted maps)
//   - Unicode: Standard with non-ASCII runes escaped for terminal-safe output
//   - Verbose: a go-spew dump, useful for deeply nested values
//
// Every strategy renders nil values as the literal string "null".
package representation
