package trace

import (
	"strconv"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq numbers emitted events in the order they are written.
func NextSeq() uint64 { return seqCounter.Add(1) }

// Span is an open begin/end pair. Spans returned for a disabled tracer or a
// filtered scope are inert: every method is a no-op and ID is 0.
type Span struct {
	t      Tracer
	id     uint64
	parent uint64
	scope  Scope
	name   string
	start  time.Time
	attrs  map[string]string
}

func active(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}

// Begin emits a begin event and returns the span to close with End or
// Finish. parent is 0 for a root span.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !active(t, scope) {
		return &Span{}
	}
	s := &Span{
		t:      t,
		id:     spanCounter.Add(1),
		parent: parent,
		scope:  scope,
		name:   name,
		start:  time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.start, ""))
	return s
}

func (s *Span) live() bool {
	return s != nil && s.t != nil
}

// Set attaches an attribute reported with the end event.
func (s *Span) Set(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.attrs == nil {
		s.attrs = make(map[string]string, 4)
	}
	s.attrs[key] = value
	return s
}

// SetInt is Set for counters.
func (s *Span) SetInt(key string, v int) *Span {
	if !s.live() {
		return s
	}
	return s.Set(key, strconv.Itoa(v))
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	now := time.Now()
	s.t.Emit(s.event(KindSpanEnd, now, detail))
	return now.Sub(s.start)
}

// Finish ends the span with "ok" or the error text.
func (s *Span) Finish(err error) time.Duration {
	if err != nil {
		return s.End(err.Error())
	}
	return s.End("ok")
}

// ID identifies the span as a parent for nested spans and points.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

func (s *Span) event(kind Kind, at time.Time, detail string) *Event {
	ev := &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Detail:   detail,
	}
	if kind == KindSpanEnd {
		ev.Extra = s.attrs
	}
	return ev
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !active(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}
