package testkit

import (
	"math"
	"testing"

	"grab/internal/match"
	"grab/internal/window"
)

func TestCheckGroupInvariantsAccepts(t *testing.T) {
	lines := window.Strings{"x", "a", "x", "b", "c", "x"}
	m := match.MustCompile("x", match.Options{})
	for _, ctx := range []window.Context{
		{},
		{Kind: window.After, Size: 2},
		{Kind: window.Before, Size: 1},
		{Kind: window.Both, Size: 3},
		{Kind: window.After, Size: math.MaxInt},
		{Kind: window.Both, Size: math.MaxInt},
	} {
		groups := window.Assemble(lines, m, ctx, nil)
		if err := CheckGroupInvariants(groups, lines, ctx); err != nil {
			t.Errorf("%s: %v", ctx, err)
		}
		if err := CheckMerged(window.Merge(groups)); err != nil {
			t.Errorf("%s merged: %v", ctx, err)
		}
	}
}

func TestCheckGroupInvariantsRejects(t *testing.T) {
	lines := window.Strings{"a", "b", "c"}
	ctx := window.Context{Kind: window.After, Size: 1}
	tests := []struct {
		name   string
		groups []window.Group
	}{
		{"empty group", []window.Group{{Anchor: 0}}},
		{"missing anchor", []window.Group{{Anchor: 0, Entries: []window.Entry{{Index: 0}, {Index: 1}}}}},
		{"gap", []window.Group{{Anchor: 0, Entries: []window.Entry{{Index: 0, Anchor: true}, {Index: 2}}}}},
		{"past end", []window.Group{{Anchor: 2, Entries: []window.Entry{{Index: 2, Anchor: true}, {Index: 3}}}}},
		{"short window", []window.Group{{Anchor: 0, Entries: []window.Entry{{Index: 0, Anchor: true}}}}},
		{"anchors out of order", []window.Group{
			{Anchor: 1, Entries: []window.Entry{{Index: 1, Anchor: true}, {Index: 2}}},
			{Anchor: 0, Entries: []window.Entry{{Index: 0, Anchor: true}, {Index: 1}}},
		}},
	}
	for _, tt := range tests {
		if err := CheckGroupInvariants(tt.groups, lines, ctx); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestCheckMergedRejectsTouching(t *testing.T) {
	groups := []window.Group{
		{Anchor: 0, Entries: []window.Entry{{Index: 0, Anchor: true}}},
		{Anchor: 1, Entries: []window.Entry{{Index: 1, Anchor: true}}},
	}
	if err := CheckMerged(groups); err == nil {
		t.Error("expected error for adjacent groups")
	}
}
