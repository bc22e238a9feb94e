package source

import (
	"io"
	"strings"

	"grab/internal/diag"
)

// Buffer is a fully materialised input with random access by line index.
type Buffer struct {
	content string
	lineIdx []int
	lines   int
	crlf    bool
}

// ReadAll drains r into a Buffer.
func ReadAll(r io.Reader) (*Buffer, error) {
	content, err := io.ReadAll(decode(r))
	if err != nil {
		return nil, diag.Wrap(diag.IOReadInput, "read", err)
	}
	return NewBuffer(content)
}

// NewBuffer indexes content. CRLF line endings are normalised first.
func NewBuffer(content []byte) (*Buffer, error) {
	content, hadCRLF := normalizeCRLF(content)
	text := string(content)
	idx := buildLineIndex(text)
	lines := len(idx)
	if len(text) > 0 && text[len(text)-1] != '\n' {
		lines++
	}
	return &Buffer{content: text, lineIdx: idx, lines: lines, crlf: hadCRLF}, nil
}

// FromLines builds a Buffer holding exactly lines.
func FromLines(lines ...string) *Buffer {
	if len(lines) == 0 {
		b, _ := NewBuffer(nil)
		return b
	}
	b, err := NewBuffer([]byte(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.lines
}

// Text returns line i without its terminator. Out-of-range indices yield "".
func (b *Buffer) Text(i int) string {
	if b == nil || i < 0 || i >= b.lines {
		return ""
	}
	start := 0
	if i > 0 {
		start = b.lineIdx[i-1] + 1
	}
	end := len(b.content)
	if i < len(b.lineIdx) {
		end = b.lineIdx[i]
	}
	return b.content[start:end]
}

// Line returns line i.
func (b *Buffer) Line(i int) Line {
	return Line{Index: i, Text: b.Text(i)}
}

// NormalizedCRLF reports whether the input used \r\n line endings.
func (b *Buffer) NormalizedCRLF() bool {
	return b != nil && b.crlf
}
