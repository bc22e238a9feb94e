// Package grab runs one search: it reads lines, classifies them and renders
// the selected output mode.
package grab

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"grab/internal/diag"
	"grab/internal/highlight"
	"grab/internal/match"
	"grab/internal/observ"
	"grab/internal/render"
	"grab/internal/source"
	"grab/internal/trace"
	"grab/internal/window"
)

// Result summarises a run.
type Result struct {
	Mode    Mode
	Lines   int // lines read
	Matched int // lines with at least one match
	Groups  int // context groups written
}

// Run searches in with m and writes the output selected by opts to out.
// Output is buffered and flushed once, also when the run fails part way.
// ctx is checked between lines and carries the tracer.
func Run(ctx context.Context, m match.Matcher, in io.Reader, out io.Writer, opts Options) (res Result, err error) {
	if m == nil {
		return res, fmt.Errorf("grab: nil matcher")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	mode := SelectMode(opts)
	res.Mode = mode

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeRun, "run", 0).Set("mode", mode.String())
	defer func() {
		span.SetInt("lines", res.Lines).SetInt("matched", res.Matched).Finish(err)
	}()

	palette := highlight.DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}
	r := &runner{
		ctx:    ctx,
		m:      m,
		opts:   opts,
		hl:     highlight.New(opts.Color, palette),
		tracer: tracer,
		parent: span.ID(),
		res:    &res,
	}
	r.out = render.New(out, render.Options{LineNumber: opts.LineNumber, Separator: opts.Separator}, r.hl)

	switch mode {
	case ModeCount:
		err = r.count(in)
	case ModeInvert:
		err = r.invert(in)
	case ModeContext:
		err = r.context(in)
	default:
		err = r.plain(in)
	}
	if ferr := r.out.Flush(); err == nil {
		err = ferr
	}
	return res, err
}

type runner struct {
	ctx    context.Context
	m      match.Matcher
	opts   Options
	hl     *highlight.Highlighter
	out    *render.Renderer
	tracer trace.Tracer
	parent uint64
	res    *Result
}

func (r *runner) timer() *observ.Timer {
	return r.opts.Timer
}

// stream feeds every input line to fn, stopping at the first error.
func (r *runner) stream(in io.Reader, fn func(line source.Line) error) error {
	done := r.timer().Track(observ.PhaseScan)
	sp := trace.Begin(r.tracer, trace.ScopePhase, observ.PhaseScan, r.parent)
	defer func() {
		sp.SetInt("lines", r.res.Lines).End("")
		done(fmt.Sprintf("%d lines", r.res.Lines))
	}()

	sc := source.NewScanner(in)
	for sc.Scan() {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		line := sc.Line()
		r.res.Lines++
		r.checkDecoding(line, sp.ID())
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (r *runner) checkDecoding(line source.Line, parent uint64) {
	if line.Valid() {
		return
	}
	trace.Point(r.tracer, trace.ScopeLine, "line:"+strconv.Itoa(line.Number()), diag.LineDecoding.String(), parent)
}

func (r *runner) count(in io.Reader) error {
	err := r.stream(in, func(line source.Line) error {
		if len(match.Classify(r.m, line.Text)) > 0 {
			r.res.Matched++
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.out.Count(r.res.Matched)
}

func (r *runner) invert(in io.Reader) error {
	return r.stream(in, func(line source.Line) error {
		if r.m.Match(line.Text) {
			r.res.Matched++
			return nil
		}
		return r.out.Line(line.Index, line.Text)
	})
}

func (r *runner) plain(in io.Reader) error {
	return r.stream(in, func(line source.Line) error {
		spans := match.Classify(r.m, line.Text)
		if len(spans) == 0 {
			return nil
		}
		r.res.Matched++
		return r.out.Line(line.Index, r.hl.Line(line.Text, spans))
	})
}

func (r *runner) context(in io.Reader) error {
	buf, err := r.read(in)
	if err != nil {
		return err
	}
	if err := r.ctx.Err(); err != nil {
		return err
	}
	groups := r.assemble(buf)
	if err := r.ctx.Err(); err != nil {
		return err
	}

	done := r.timer().Track(observ.PhaseRender)
	sp := trace.Begin(r.tracer, trace.ScopePhase, observ.PhaseRender, r.parent)
	err = r.out.Groups(groups)
	st := r.out.Stats()
	sp.SetInt("lines", st.Lines).End("")
	done(fmt.Sprintf("%d lines", st.Lines))
	return err
}

func (r *runner) read(in io.Reader) (*source.Buffer, error) {
	done := r.timer().Track(observ.PhaseRead)
	sp := trace.Begin(r.tracer, trace.ScopePhase, observ.PhaseRead, r.parent)
	buf, err := source.ReadAll(in)
	r.res.Lines = buf.Len()
	sp.SetInt("lines", r.res.Lines).End("")
	done(fmt.Sprintf("%d lines", r.res.Lines))
	if err != nil {
		return nil, err
	}
	if r.tracer.Level().ShouldEmit(trace.ScopeLine) {
		for i := range buf.Len() {
			r.checkDecoding(buf.Line(i), sp.ID())
		}
	}
	return buf, nil
}

func (r *runner) assemble(buf *source.Buffer) []window.Group {
	done := r.timer().Track(observ.PhaseAssemble)
	sp := trace.Begin(r.tracer, trace.ScopePhase, observ.PhaseAssemble, r.parent).
		Set("context", r.opts.Context.String())

	anchors := window.Anchors(buf, r.m)
	r.res.Matched = len(anchors)
	var paint window.Painter
	if r.hl.Enabled() {
		paint = r.hl.Line
	}
	groups := window.Build(buf, anchors, r.opts.Context, paint)
	if r.opts.MergeGroups {
		groups = window.Merge(groups)
	}
	r.res.Groups = len(groups)

	sp.SetInt("groups", len(groups)).End("")
	done(fmt.Sprintf("%d groups", len(groups)))
	return groups
}
