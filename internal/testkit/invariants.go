// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"grab/internal/window"
)

// CheckGroupInvariants verifies groups assembled from lines with ctx:
// 1) anchors strictly increase from group to group
// 2) every group is non-empty, contiguous and contains its anchor exactly once
// 3) no index is negative or past the end of lines
// 4) each group is exactly the clamped window Bounds gives for its anchor
func CheckGroupInvariants(groups []window.Group, lines window.Lines, ctx window.Context) error {
	n := lines.Len()
	prev := -1
	for gi, g := range groups {
		if g.Anchor <= prev {
			return fmt.Errorf("group %d: anchor %d does not follow %d", gi, g.Anchor, prev)
		}
		prev = g.Anchor
		if len(g.Entries) == 0 {
			return fmt.Errorf("group %d: empty", gi)
		}

		anchors := 0
		for i, e := range g.Entries {
			if e.Index < 0 || e.Index >= n {
				return fmt.Errorf("group %d: index %d outside [0, %d)", gi, e.Index, n)
			}
			if i > 0 && e.Index != g.Entries[i-1].Index+1 {
				return fmt.Errorf("group %d: index %d follows %d", gi, e.Index, g.Entries[i-1].Index)
			}
			if e.Anchor {
				if e.Index != g.Anchor {
					return fmt.Errorf("group %d: entry %d marked as anchor, want %d", gi, e.Index, g.Anchor)
				}
				anchors++
			}
		}
		if anchors != 1 {
			return fmt.Errorf("group %d: %d anchor entries", gi, anchors)
		}

		lo, hi := window.Bounds(ctx, g.Anchor)
		hi = min(hi, n-1)
		if g.Lo() != lo || g.Hi() != hi {
			return fmt.Errorf("group %d: spans %d..%d, want %d..%d", gi, g.Lo(), g.Hi(), lo, hi)
		}
	}
	return nil
}

// CheckMerged verifies the output of window.Merge: groups are disjoint,
// separated by at least one line, and every line appears at most once.
func CheckMerged(groups []window.Group) error {
	last := -2
	for gi, g := range groups {
		if len(g.Entries) == 0 {
			return fmt.Errorf("merged group %d: empty", gi)
		}
		if g.Lo() <= last+1 {
			return fmt.Errorf("merged group %d starts at %d, previous ended at %d", gi, g.Lo(), last)
		}
		for i, e := range g.Entries {
			if i > 0 && e.Index != g.Entries[i-1].Index+1 {
				return fmt.Errorf("merged group %d: index %d follows %d", gi, e.Index, g.Entries[i-1].Index)
			}
		}
		last = g.Hi()
	}
	return nil
}
