package grab

import (
	"grab/internal/highlight"
	"grab/internal/observ"
	"grab/internal/window"
)

// Mode is the output path a run takes.
type Mode uint8

const (
	ModePlain Mode = iota
	ModeCount
	ModeInvert
	ModeContext
)

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeCount:
		return "count"
	case ModeInvert:
		return "invert"
	case ModeContext:
		return "context"
	}
	return "unknown"
}

// Options select and shape the output. The zero value prints matching lines
// without numbers or color. Callers that want the usual group separator set
// Separator to render.DefaultSeparator.
type Options struct {
	Count       bool
	LineNumber  bool
	Color       bool
	InvertMatch bool

	Context     window.Context
	Separator   string // printed as given, may be empty
	MergeGroups bool

	Palette *highlight.Palette // nil means highlight.DefaultPalette
	Timer   *observ.Timer      // optional
}

// SelectMode picks the output path. Count wins over invert, invert over
// context, and context over plain.
func SelectMode(opts Options) Mode {
	switch {
	case opts.Count:
		return ModeCount
	case opts.InvertMatch:
		return ModeInvert
	case opts.Context.Enabled():
		return ModeContext
	}
	return ModePlain
}
