// Package window assembles context windows around matching lines.
//
// Every matching line (an anchor) gets its own Group holding the lines of its
// window in ascending order. Windows of nearby anchors are not merged: a line
// may appear in several consecutive groups. Merge coalesces them for callers
// that want each line once.
package window

import "grab/internal/match"

// Lines is random access to a materialised input.
type Lines interface {
	Len() int
	Text(i int) string
}

// Strings adapts a string slice to Lines.
type Strings []string

func (s Strings) Len() int { return len(s) }

func (s Strings) Text(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// Painter decorates an anchor line given its match spans.
type Painter func(text string, spans []match.Span) string

// Anchor is a matching line.
type Anchor struct {
	Index int
	Spans []match.Span
}

// Entry is one line inside a group.
type Entry struct {
	Index  int
	Text   string
	Anchor bool
}

// Group is the window of one anchor. Entry indices are contiguous and
// increasing.
type Group struct {
	Anchor  int
	Entries []Entry
}

// Lo is the first index of the group, or -1 when it is empty.
func (g Group) Lo() int {
	if len(g.Entries) == 0 {
		return -1
	}
	return g.Entries[0].Index
}

// Hi is the last index of the group, or -1 when it is empty.
func (g Group) Hi() int {
	if len(g.Entries) == 0 {
		return -1
	}
	return g.Entries[len(g.Entries)-1].Index
}

// Anchors scans lines once and returns every matching index in order.
func Anchors(lines Lines, m match.Matcher) []Anchor {
	if lines == nil || m == nil {
		return nil
	}
	var out []Anchor
	for i := range lines.Len() {
		if spans := match.Classify(m, lines.Text(i)); len(spans) > 0 {
			out = append(out, Anchor{Index: i, Spans: spans})
		}
	}
	return out
}

// Assemble builds one group per anchor. The anchor entry is passed through
// paint when paint is non-nil; context entries are always raw. Indices past
// the end of lines are dropped.
func Assemble(lines Lines, m match.Matcher, ctx Context, paint Painter) []Group {
	return Build(lines, Anchors(lines, m), ctx, paint)
}

// Build is Assemble for anchors that were already located.
func Build(lines Lines, anchors []Anchor, ctx Context, paint Painter) []Group {
	if len(anchors) == 0 {
		return nil
	}
	n := lines.Len()
	groups := make([]Group, 0, len(anchors))
	for _, a := range anchors {
		lo, hi := Bounds(ctx, a.Index)
		hi = min(hi, n-1)
		g := Group{Anchor: a.Index, Entries: make([]Entry, 0, hi-lo+1)}
		for i := lo; i <= hi; i++ {
			text := lines.Text(i)
			isAnchor := i == a.Index
			if isAnchor && paint != nil {
				text = paint(text, a.Spans)
			}
			g.Entries = append(g.Entries, Entry{Index: i, Text: text, Anchor: isAnchor})
		}
		groups = append(groups, g)
	}
	return groups
}

// Merge coalesces groups whose windows overlap or touch, so every line is
// emitted once. An entry that is an anchor in any of the merged groups keeps
// its anchor text. The merged group is keyed by its first anchor. groups must
// be in ascending anchor order, as Assemble returns them.
func Merge(groups []Group) []Group {
	var out []Group
	for _, g := range groups {
		if len(g.Entries) == 0 {
			continue
		}
		if len(out) > 0 {
			cur := &out[len(out)-1]
			if g.Lo() <= cur.Hi()+1 {
				base := cur.Lo()
				for _, e := range g.Entries {
					if e.Index <= cur.Hi() {
						if e.Anchor && e.Index >= base {
							cur.Entries[e.Index-base] = e
						}
						continue
					}
					cur.Entries = append(cur.Entries, e)
				}
				continue
			}
		}
		out = append(out, Group{
			Anchor:  g.Anchor,
			Entries: append([]Entry(nil), g.Entries...),
		})
	}
	return out
}
