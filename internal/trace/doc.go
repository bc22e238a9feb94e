// Package trace provides the tracing subsystem grab uses for diagnostics
// output.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	grab --trace=- --trace-level=phase 'pattern' input.txt
//
// Events go to stderr when the output is "-" and to a file otherwise. The
// ".ndjson" extension selects newline-delimited JSON, anything else gets the
// human-readable text format.
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Fatal errors only
//   - LevelPhase: The run and its phases (read, assemble, render)
//   - LevelDetail: Per-line events (undecodable lines, anchors)
//   - LevelDebug: Everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePhase, "assemble", parentID)
//	defer span.End("")
package trace
