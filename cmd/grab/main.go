package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"grab/internal/render"
	"grab/internal/version"
)

const longHelp = `grab prints the lines of FILE that match PATTERN, a regular expression in
RE2 syntax. With no FILE, or when FILE is -, standard input is read.

With -A, -B or -C every matching line is printed with its own window of
context lines. Windows of nearby matches are not merged unless
--merge-groups is given, so a line may be printed more than once.

Defaults can be set in $XDG_CONFIG_HOME/grab/config.toml, in the file named
by $GRAB_CONFIG, or with --config. Flags override the file.`

// main runs the root command and exits with status 1 on failure. An
// interrupt cancels the command context, which stops the search between
// lines.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "grab [flags] PATTERN [FILE]",
		Short:        "Print lines matching a pattern",
		Long:         longHelp,
		Args:         cobra.RangeArgs(1, 2),
		Version:      version.String(),
		SilenceUsage: true,
		RunE:         runGrab,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	f := cmd.Flags()
	f.SortFlags = false
	f.BoolP("count", "c", false, "print only the number of matching lines")
	f.BoolP("line-number", "n", false, "prefix each line with its 1-based line number")
	f.String("color", string(colorModeOff), "highlight matches (auto|on|off)")
	f.Lookup("color").NoOptDefVal = string(colorModeOn)
	f.BoolP("ignore-case", "i", false, "match case-insensitively")
	f.BoolP("invert-match", "v", false, "print lines that do not match")
	f.StringP("after-context", "A", "", "print `NUM` lines of trailing context")
	f.StringP("before-context", "B", "", "print `NUM` lines of leading context")
	f.StringP("context", "C", "", "print `NUM` lines of context on both sides")
	f.String("group-separator", render.DefaultSeparator, "line printed between context groups")
	f.Bool("merge-groups", false, "merge overlapping context windows")
	f.String("config", "", "read defaults from this TOML `file`")
	f.Bool("timings", false, "print phase timings to stderr")
	f.String("trace", "", "write trace events to `file` (- for stderr)")
	f.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	f.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	f.String("cpu-profile", "", "write a CPU profile to `file`")
	f.String("mem-profile", "", "write a heap profile to `file`")
	f.String("runtime-trace", "", "write a Go runtime trace to `file`")
	cmd.MarkFlagsMutuallyExclusive("after-context", "before-context", "context")

	return cmd
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
