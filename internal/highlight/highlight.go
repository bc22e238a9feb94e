// Package highlight wraps matched text, line numbers and group separators in
// terminal color sequences.
package highlight

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"grab/internal/match"
)

// Category selects which color a piece of output gets.
type Category uint8

const (
	Match Category = iota
	LineNumber
	Separator
	numCategories
)

func (c Category) String() string {
	switch c {
	case Match:
		return "match"
	case LineNumber:
		return "line-number"
	case Separator:
		return "separator"
	}
	return "unknown"
}

// Palette maps each category to a foreground color.
type Palette struct {
	Match      color.Attribute
	LineNumber color.Attribute
	Separator  color.Attribute
}

// DefaultPalette is red matches, green line numbers and blue separators.
func DefaultPalette() Palette {
	return Palette{
		Match:      color.FgRed,
		LineNumber: color.FgGreen,
		Separator:  color.FgBlue,
	}
}

var colorNames = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright-black":   color.FgHiBlack,
	"bright-red":     color.FgHiRed,
	"bright-green":   color.FgHiGreen,
	"bright-yellow":  color.FgHiYellow,
	"bright-blue":    color.FgHiBlue,
	"bright-magenta": color.FgHiMagenta,
	"bright-cyan":    color.FgHiCyan,
	"bright-white":   color.FgHiWhite,
}

// ParseColor resolves a color name such as "red" or "bright-blue".
func ParseColor(name string) (color.Attribute, error) {
	attr, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown color %q", name)
	}
	return attr, nil
}

// Highlighter paints output. A disabled Highlighter returns text unchanged.
type Highlighter struct {
	enabled bool
	colors  [numCategories]*color.Color
}

// New returns a Highlighter. When enabled, sequences are emitted even if
// stdout is not a terminal: the caller has already decided.
func New(enabled bool, p Palette) *Highlighter {
	h := &Highlighter{enabled: enabled}
	for cat, attr := range map[Category]color.Attribute{
		Match:      p.Match,
		LineNumber: p.LineNumber,
		Separator:  p.Separator,
	} {
		c := color.New(attr)
		c.EnableColor()
		h.colors[cat] = c
	}
	return h
}

// Enabled reports whether the highlighter emits color.
func (h *Highlighter) Enabled() bool {
	return h != nil && h.enabled
}

// Paint wraps text in the color of cat.
func (h *Highlighter) Paint(cat Category, text string) string {
	if !h.Enabled() || cat >= numCategories {
		return text
	}
	return h.colors[cat].Sprint(text)
}

// Line highlights the matches of text. spans index into the unpainted text.
//
// Substitution is by content, not by position: for each span in order, every
// occurrence of its literal text in the working copy is replaced with the
// painted form, and each distinct literal is substituted once. Equal text that
// was not itself a match gets highlighted too, and a later literal may match
// inside earlier escape sequences.
func (h *Highlighter) Line(text string, spans []match.Span) string {
	if !h.Enabled() || len(spans) == 0 {
		return text
	}
	working := text
	seen := make(map[string]struct{}, len(spans))
	for _, sp := range spans {
		lit := sp.Text(text)
		if lit == "" {
			continue
		}
		if _, ok := seen[lit]; ok {
			continue
		}
		seen[lit] = struct{}{}
		working = strings.ReplaceAll(working, lit, h.Paint(Match, lit))
	}
	return working
}
