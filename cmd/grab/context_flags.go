package main

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/pflag"

	"grab/internal/diag"
	"grab/internal/window"
)

// contextLength reads a -A/-B/-C value. It returns nil when the flag was not
// given.
func contextLength(flags *pflag.FlagSet, name string) (*int, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	raw, err := flags.GetString(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	op := "--" + name
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, diag.Errorf(diag.InvalidContextLength, op, "%q is not a non-negative integer", raw)
	}
	size, err := safecast.Conv[int](n)
	if err != nil {
		return nil, diag.Wrap(diag.InvalidContextLength, op, err)
	}
	return &size, nil
}

func readContext(flags *pflag.FlagSet) (window.Context, error) {
	after, err := contextLength(flags, "after-context")
	if err != nil {
		return window.Context{}, err
	}
	before, err := contextLength(flags, "before-context")
	if err != nil {
		return window.Context{}, err
	}
	both, err := contextLength(flags, "context")
	if err != nil {
		return window.Context{}, err
	}
	return window.Choose(after, before, both), nil
}
