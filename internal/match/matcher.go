// Package match compiles search patterns and classifies lines against them.
package match

import (
	"regexp"

	"grab/internal/diag"
)

// Matcher locates pattern occurrences in a single line of text.
type Matcher interface {
	// Find returns the ordered, non-overlapping match spans in text.
	Find(text string) []Span
	// Match reports whether text contains at least one match.
	Match(text string) bool
}

// Options are fixed at construction time.
type Options struct {
	IgnoreCase bool
}

// Regexp is a Matcher backed by RE2 syntax.
type Regexp struct {
	re      *regexp.Regexp
	pattern string
	opts    Options
}

// Compile builds a Matcher for pattern. A malformed pattern yields a
// *diag.Error with code diag.PatternSyntax.
func Compile(pattern string, opts Options) (*Regexp, error) {
	expr := pattern
	if opts.IgnoreCase {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, diag.Wrap(diag.PatternSyntax, "compile "+pattern, err)
	}
	return &Regexp{re: re, pattern: pattern, opts: opts}, nil
}

// MustCompile is like Compile but panics on error. Intended for tests and
// package-level patterns.
func MustCompile(pattern string, opts Options) *Regexp {
	m, err := Compile(pattern, opts)
	if err != nil {
		panic(err)
	}
	return m
}

func (r *Regexp) Find(text string) []Span {
	locs := r.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans
}

func (r *Regexp) Match(text string) bool {
	return r.re.MatchString(text)
}

// Pattern returns the pattern as given by the user.
func (r *Regexp) Pattern() string {
	return r.pattern
}

// IgnoreCase reports whether the matcher was compiled case-insensitively.
func (r *Regexp) IgnoreCase() bool {
	return r.opts.IgnoreCase
}

// Classify returns the match spans of line. The line matches iff the result
// is non-empty.
func Classify(m Matcher, line string) []Span {
	if m == nil {
		return nil
	}
	return m.Find(line)
}
