package observ

import (
	"bytes"
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	done := tm.Track(PhaseRead)
	done("4 lines")
	idx := tm.Begin(PhaseRender)
	tm.End(idx, "")
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != PhaseRead || report.Phases[0].Note != "4 lines" {
		t.Errorf("unexpected first phase: %+v", report.Phases[0])
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Errorf("total %.3f smaller than a phase %.3f", report.TotalMS, report.Phases[0].DurationMS)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.Track(PhaseScan)("2 matched")

	var buf bytes.Buffer
	if err := tm.WriteSummary(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"timings:", "scan", "// 2 matched", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track(PhaseRead)("")
	if got := tm.Report(); len(got.Phases) != 0 {
		t.Errorf("nil timer reported phases: %+v", got)
	}
}
