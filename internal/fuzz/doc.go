// Package fuzztests houses Go fuzz harnesses for the search pipeline
// (source -> match -> window -> render). They guard against panics, hangs
// and broken window invariants on arbitrary input.
//
// Seeds come from the CLI testdata and a few inline cases; nothing is
// written to disk.
package fuzztests
