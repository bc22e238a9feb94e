// Package diag defines the error model shared by every grab component.
//
// # Codes
//
// Every failure grab can report carries a Code. Codes are grouped in ranges so
// that their string identifiers stay stable:
//
//   - PAT1xxx: the search pattern could not be compiled.
//   - CTX2xxx: a context length argument is not a non-negative integer.
//   - IO3xxx: reading the input or writing the output failed.
//   - DEC4xxx: a line could not be decoded as text.
//   - CFG5xxx: the defaults file is malformed.
//
// # Severity
//
// Codes with SevError are fatal: the run stops and the error reaches the CLI
// boundary, which prints it and exits with status 1. SevWarning codes
// (LineDecoding) never abort a run; they are only reported through tracing.
//
// # Errors
//
// Error binds a Code to the operation that failed and the underlying cause.
// Producers build one with Errorf or Wrap, callers further up wrap it with
// fmt.Errorf("...: %w", err) as usual, and CodeOf recovers the code through
// any number of wrapping layers.
package diag
