package fuzztests

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"grab/internal/grab"
	"grab/internal/match"
	"grab/internal/source"
	"grab/internal/testkit"
	"grab/internal/window"
)

// runTimeout bounds a single run; exceeding it means a hang.
const runTimeout = 5 * time.Second

func FuzzScannerMatchesBuffer(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte, _ string, _ uint8) {
		input = clampInput(input)
		buf, err := source.ReadAll(bytes.NewReader(input))
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		sc := source.NewScanner(bytes.NewReader(input))
		n := 0
		for sc.Scan() {
			line := sc.Line()
			if line.Index != n {
				t.Fatalf("scanner index %d, want %d", line.Index, n)
			}
			if got := buf.Text(n); got != line.Text {
				t.Fatalf("line %d: buffer %q, scanner %q", n, got, line.Text)
			}
			n++
		}
		if err := sc.Err(); err != nil {
			t.Fatalf("scanner: %v", err)
		}
		if n != buf.Len() {
			t.Fatalf("scanner saw %d lines, buffer %d", n, buf.Len())
		}
	})
}

func FuzzAssembleInvariants(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte, pattern string, size uint8) {
		m, err := match.Compile(pattern, match.Options{})
		if err != nil {
			return
		}
		buf, err := source.ReadAll(bytes.NewReader(clampInput(input)))
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		anchors := window.Anchors(buf, m)
		for _, kind := range []window.Kind{window.None, window.After, window.Before, window.Both} {
			ctx := window.Context{Kind: kind, Size: int(size % 16)}
			groups := window.Build(buf, anchors, ctx, nil)
			if len(groups) != len(anchors) {
				t.Fatalf("%s: %d groups for %d anchors", ctx, len(groups), len(anchors))
			}
			if err := testkit.CheckGroupInvariants(groups, buf, ctx); err != nil {
				t.Fatalf("%s: %v", ctx, err)
			}
			if err := testkit.CheckMerged(window.Merge(groups)); err != nil {
				t.Fatalf("%s: %v", ctx, err)
			}
		}
	})
}

func FuzzRunModes(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte, pattern string, size uint8) {
		m, err := match.Compile(pattern, match.Options{})
		if err != nil {
			return
		}
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		run := func(opts grab.Options) (string, grab.Result) {
			var out bytes.Buffer
			res, err := grab.Run(ctx, m, bytes.NewReader(input), &out, opts)
			if err != nil {
				t.Fatalf("Run(%s): %v", grab.SelectMode(opts), err)
			}
			return out.String(), res
		}

		countOut, counted := run(grab.Options{Count: true})
		if countOut != strconv.Itoa(counted.Matched)+"\n" {
			t.Fatalf("count output %q, result %d", countOut, counted.Matched)
		}
		plainOut, plain := run(grab.Options{LineNumber: true})
		_, inverted := run(grab.Options{InvertMatch: true})
		if plain.Matched != counted.Matched || inverted.Matched != counted.Matched {
			t.Fatalf("matched: plain %d, invert %d, count %d", plain.Matched, inverted.Matched, counted.Matched)
		}
		if got := strings.Count(plainOut, "\n"); got != plain.Matched {
			t.Fatalf("plain printed %d lines for %d matches", got, plain.Matched)
		}

		for _, merge := range []bool{false, true} {
			opts := grab.Options{
				Context:     window.Context{Kind: window.Both, Size: int(size % 8)},
				Separator:   "--",
				MergeGroups: merge,
			}
			_, res := run(opts)
			if res.Matched != counted.Matched {
				t.Fatalf("context matched %d, count %d", res.Matched, counted.Matched)
			}
			if !merge && res.Groups != res.Matched {
				t.Fatalf("%d groups for %d anchors", res.Groups, res.Matched)
			}
		}
	})
}
