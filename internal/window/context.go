package window

import (
	"fmt"
	"math"
)

// Kind is the shape of a context window around an anchor line.
type Kind uint8

const (
	None Kind = iota
	After
	Before
	Both
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case After:
		return "after"
	case Before:
		return "before"
	case Both:
		return "both"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Context is the requested window. Size is the number of lines on each
// side the Kind covers; negative sizes behave as zero.
type Context struct {
	Kind Kind
	Size int
}

// Enabled reports whether a context window was requested at all.
func (c Context) Enabled() bool {
	return c.Kind != None
}

func (c Context) String() string {
	if c.Kind == None {
		return "none"
	}
	return fmt.Sprintf("%s:%d", c.Kind, c.Size)
}

// Choose builds a Context from optional after/before/both lengths. When more
// than one is set, after wins over before and before wins over both.
func Choose(after, before, both *int) Context {
	switch {
	case after != nil:
		return Context{Kind: After, Size: *after}
	case before != nil:
		return Context{Kind: Before, Size: *before}
	case both != nil:
		return Context{Kind: Both, Size: *both}
	}
	return Context{}
}

// Bounds returns the inclusive index range of the window around anchor. lo is
// never negative; hi is not clamped to the input length and saturates at
// math.MaxInt.
func Bounds(ctx Context, anchor int) (lo, hi int) {
	k := max(ctx.Size, 0)
	switch ctx.Kind {
	case After:
		return anchor, addSat(anchor, k)
	case Before:
		return max(0, anchor-k), anchor
	case Both:
		return max(0, anchor-k), addSat(anchor, k)
	}
	return anchor, anchor
}

// addSat adds two non-negative ints without wrapping.
func addSat(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}
