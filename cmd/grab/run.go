package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"grab/internal/config"
	"grab/internal/grab"
	"grab/internal/match"
	"grab/internal/observ"
	"grab/internal/source"
)

func runGrab(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.LoadDefault(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := readOptions(cmd, cfg)
	if err != nil {
		return err
	}
	ignoreCase, err := boolSetting(flags, "ignore-case", cfg, cfg.Search.IgnoreCase, "search", "ignore_case")
	if err != nil {
		return err
	}

	showTimings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if showTimings {
		opts.Timer = observ.NewTimer()
		defer func() {
			if err := opts.Timer.WriteSummary(cmd.ErrOrStderr()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "timings: %v\n", err)
			}
		}()
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	done := opts.Timer.Track(observ.PhaseCompile)
	m, err := match.Compile(args[0], match.Options{IgnoreCase: ignoreCase})
	done("")
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 1 {
		path = args[1]
	}
	in, err := source.Open(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	if _, err := grab.Run(cmd.Context(), m, in, cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("%s: %w", in.Name, err)
	}
	return nil
}

// readOptions merges flags over the config file.
func readOptions(cmd *cobra.Command, cfg *config.Config) (grab.Options, error) {
	flags := cmd.Flags()
	var opts grab.Options
	var err error

	if opts.Count, err = flags.GetBool("count"); err != nil {
		return opts, fmt.Errorf("failed to get count flag: %w", err)
	}
	if opts.InvertMatch, err = flags.GetBool("invert-match"); err != nil {
		return opts, fmt.Errorf("failed to get invert-match flag: %w", err)
	}
	if opts.LineNumber, err = boolSetting(flags, "line-number", cfg, cfg.Output.LineNumber, "output", "line_number"); err != nil {
		return opts, err
	}
	if opts.MergeGroups, err = boolSetting(flags, "merge-groups", cfg, cfg.Output.MergeGroups, "output", "merge_groups"); err != nil {
		return opts, err
	}
	if opts.Separator, err = stringSetting(flags, "group-separator", cfg, cfg.Output.GroupSeparator, "output", "group_separator"); err != nil {
		return opts, err
	}
	if opts.Context, err = readContext(flags); err != nil {
		return opts, err
	}

	colorValue, err := stringSetting(flags, "color", cfg, cfg.Output.Color, "output", "color")
	if err != nil {
		return opts, err
	}
	mode, err := readColorMode(colorValue)
	if err != nil {
		return opts, err
	}
	opts.Color = shouldColor(mode, cmd.OutOrStdout())

	palette := cfg.Palette()
	opts.Palette = &palette
	return opts, nil
}

// boolSetting returns the flag value unless the flag was left at its default
// and the config file defines key.
func boolSetting(flags *pflag.FlagSet, name string, cfg *config.Config, fileValue bool, key ...string) (bool, error) {
	v, err := flags.GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if !flags.Changed(name) && cfg.Defined(key...) {
		return fileValue, nil
	}
	return v, nil
}

func stringSetting(flags *pflag.FlagSet, name string, cfg *config.Config, fileValue string, key ...string) (string, error) {
	v, err := flags.GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if !flags.Changed(name) && cfg.Defined(key...) {
		return fileValue, nil
	}
	return v, nil
}
