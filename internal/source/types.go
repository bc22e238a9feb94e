package source

import "unicode/utf8"

// StdinName is the input name reported for standard input.
const StdinName = "(standard input)"

// Line is one newline-stripped line of input.
type Line struct {
	Index int // 0-based
	Text  string
}

// Number returns the 1-based line number.
func (l Line) Number() int {
	return l.Index + 1
}

// Valid reports whether the line is well-formed UTF-8. Invalid lines are
// still searched as opaque bytes.
func (l Line) Valid() bool {
	return utf8.ValidString(l.Text)
}

// IsStdin reports whether path designates standard input.
func IsStdin(path string) bool {
	return path == "" || path == "-"
}
