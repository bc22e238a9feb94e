// Package render writes selected lines, context groups and counts.
package render

import (
	"bufio"
	"io"
	"strconv"

	"grab/internal/diag"
	"grab/internal/highlight"
	"grab/internal/window"
)

// DefaultSeparator is printed between context groups.
const DefaultSeparator = "---"

// Options control the line layout.
type Options struct {
	LineNumber bool
	Separator  string
}

// Stats counts what a Renderer has written.
type Stats struct {
	Lines      int
	Groups     int
	Separators int
}

// Renderer buffers output; nothing reaches the underlying writer before
// Flush or until the buffer fills.
type Renderer struct {
	w     *bufio.Writer
	opts  Options
	hl    *highlight.Highlighter
	stats Stats
	err   error
}

// New returns a Renderer writing to w. hl may be nil.
func New(w io.Writer, opts Options, hl *highlight.Highlighter) *Renderer {
	return &Renderer{w: bufio.NewWriter(w), opts: opts, hl: hl}
}

// Line writes one line, prefixed with "N: " (1-based) when line numbers are
// on. text is written as given.
func (r *Renderer) Line(index int, text string) error {
	if r.err != nil {
		return r.err
	}
	if r.opts.LineNumber {
		r.write(r.hl.Paint(highlight.LineNumber, strconv.Itoa(index+1)))
		r.write(": ")
	}
	r.write(text)
	r.write("\n")
	if r.err == nil {
		r.stats.Lines++
	}
	return r.err
}

// Groups writes context groups, each but the first preceded by the separator.
func (r *Renderer) Groups(groups []window.Group) error {
	for i, g := range groups {
		if i > 0 {
			if err := r.separator(); err != nil {
				return err
			}
		}
		for _, e := range g.Entries {
			if err := r.Line(e.Index, e.Text); err != nil {
				return err
			}
		}
		r.stats.Groups++
	}
	return r.err
}

func (r *Renderer) separator() error {
	sep := r.opts.Separator
	r.write(r.hl.Paint(highlight.Separator, sep))
	r.write("\n")
	if r.err == nil {
		r.stats.Separators++
	}
	return r.err
}

// Count writes n on a line of its own.
func (r *Renderer) Count(n int) error {
	r.write(strconv.Itoa(n))
	r.write("\n")
	return r.err
}

// Flush writes any buffered output.
func (r *Renderer) Flush() error {
	if r.err != nil {
		// bufio.Writer keeps the first error; report ours instead
		return r.err
	}
	if err := r.w.Flush(); err != nil {
		r.err = diag.Wrap(diag.IOWriteOutput, "flush", err)
	}
	return r.err
}

// Stats returns what has been written so far.
func (r *Renderer) Stats() Stats {
	return r.stats
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	if _, err := r.w.WriteString(s); err != nil {
		r.err = diag.Wrap(diag.IOWriteOutput, "write", err)
	}
}
