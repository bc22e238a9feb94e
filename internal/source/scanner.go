package source

import (
	"bufio"
	"errors"
	"io"

	"grab/internal/diag"
)

// Scanner yields lines one at a time without buffering the whole input.
// Lines have no length limit.
type Scanner struct {
	r    *bufio.Reader
	line Line
	next int
	err  error
	done bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(decode(r), 64*1024)}
}

// Scan advances to the next line. It returns false at end of input or on a
// read error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	text, err := s.r.ReadString('\n')
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = diag.Wrap(diag.IOReadInput, "read", err)
			return false
		}
		if text == "" {
			return false
		}
	}
	s.line = Line{Index: s.next, Text: trimEOL(text)}
	s.next++
	return true
}

// Line returns the most recent line produced by Scan.
func (s *Scanner) Line() Line {
	return s.line
}

// Err returns the first non-EOF error.
func (s *Scanner) Err() error {
	return s.err
}
