package match

import "fmt"

// Span is one match occurrence inside a line.
type Span struct {
	Start int // in bytes, inclusive
	End   int // in bytes, exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Text returns the matched substring of line. Out-of-range spans yield "".
func (s Span) Text(line string) string {
	if s.Start < 0 || s.End > len(line) || s.Start > s.End {
		return ""
	}
	return line[s.Start:s.End]
}
