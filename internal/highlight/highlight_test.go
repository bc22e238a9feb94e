package highlight

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"grab/internal/match"
)

func red(s string) string {
	c := color.New(color.FgRed)
	c.EnableColor()
	return c.Sprint(s)
}

func TestDisabledIsIdentity(t *testing.T) {
	h := New(false, DefaultPalette())
	if got := h.Paint(Match, "x"); got != "x" {
		t.Errorf("Paint() = %q, want %q", got, "x")
	}
	line := "a b a"
	if got := h.Line(line, []match.Span{{0, 1}}); got != line {
		t.Errorf("Line() = %q, want unchanged", got)
	}
	var nilH *Highlighter
	if nilH.Paint(Separator, "---") != "---" {
		t.Error("nil highlighter must be a no-op")
	}
}

func TestPaintEmitsSequences(t *testing.T) {
	h := New(true, DefaultPalette())
	for _, cat := range []Category{Match, LineNumber, Separator} {
		got := h.Paint(cat, "7")
		if !strings.HasPrefix(got, "\x1b[") || !strings.Contains(got, "7") {
			t.Errorf("Paint(%s) = %q, want escape-wrapped text", cat, got)
		}
	}
	if h.Paint(Match, "x") == h.Paint(LineNumber, "x") {
		t.Error("match and line-number colors should differ")
	}
	if got := h.Paint(Match, "x"); got != red("x") {
		t.Errorf("default match color is red: got %q", got)
	}
}

func TestLineReplaceByContent(t *testing.T) {
	h := New(true, DefaultPalette())
	m := match.MustCompile("a", match.Options{IgnoreCase: true})

	line := "AAA"
	got := h.Line(line, m.Find(line))
	want := red("A") + red("A") + red("A")
	if got != want {
		t.Errorf("Line(%q) = %q, want %q", line, got, want)
	}
}

func TestLineHighlightsNonMatchingEqualText(t *testing.T) {
	h := New(true, DefaultPalette())
	// only the first "our" is a span, the second equal text is painted anyway
	line := "our flour"
	got := h.Line(line, []match.Span{{0, 3}})
	want := red("our") + " fl" + red("our")
	if got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestLineDistinctSpans(t *testing.T) {
	h := New(true, DefaultPalette())
	m := match.MustCompile(`cat|dog`, match.Options{})
	line := "cat and dog and cat"
	got := h.Line(line, m.Find(line))
	want := red("cat") + " and " + red("dog") + " and " + red("cat")
	if got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestLineSkipsEmptySpans(t *testing.T) {
	h := New(true, DefaultPalette())
	line := "abc"
	if got := h.Line(line, []match.Span{{1, 1}}); got != line {
		t.Errorf("empty span changed the line: %q", got)
	}
}

func TestParseColor(t *testing.T) {
	attr, err := ParseColor(" Bright-Blue ")
	if err != nil || attr != color.FgHiBlue {
		t.Errorf("ParseColor = %v, %v", attr, err)
	}
	if _, err := ParseColor("mauve"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestCustomPalette(t *testing.T) {
	p := DefaultPalette()
	p.Separator = color.FgYellow
	h := New(true, p)
	c := color.New(color.FgYellow)
	c.EnableColor()
	if got := h.Paint(Separator, "--"); got != c.Sprint("--") {
		t.Errorf("Paint(Separator) = %q, want yellow", got)
	}
}
