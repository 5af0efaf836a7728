// Package output renders affirm CLI results for a terminal.
//
// ConsoleFormatter prints snapshot listings, the effective configuration
// and errors. Colors come from fatih/color and are disabled with
// WithNoColor or the NO_COLOR environment variable.
package output
