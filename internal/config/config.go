// Package config loads the optional grab defaults file.
//
// The file is TOML:
//
//	[output]
//	color = "auto"          # auto|on|off
//	line_number = true
//	group_separator = "--"
//	merge_groups = false
//
//	[search]
//	ignore_case = false
//
//	[colors]
//	match = "red"
//	line_number = "green"
//	separator = "blue"
//
// Every key is optional. Command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"grab/internal/diag"
	"grab/internal/highlight"
)

const (
	// EnvPath names a config file, used when --config is absent.
	EnvPath = "GRAB_CONFIG"

	app      = "grab"
	fileName = "config.toml"
)

type Config struct {
	Path   string `toml:"-"`
	Output Output `toml:"output"`
	Search Search `toml:"search"`
	Colors Colors `toml:"colors"`

	meta    toml.MetaData
	palette highlight.Palette
}

type Output struct {
	Color          string `toml:"color"`
	LineNumber     bool   `toml:"line_number"`
	GroupSeparator string `toml:"group_separator"`
	MergeGroups    bool   `toml:"merge_groups"`
}

type Search struct {
	IgnoreCase bool `toml:"ignore_case"`
}

type Colors struct {
	Match      string `toml:"match"`
	LineNumber string `toml:"line_number"`
	Separator  string `toml:"separator"`
}

// Default is the configuration used when no file exists.
func Default() *Config {
	return &Config{palette: highlight.DefaultPalette()}
}

// Defined reports whether the file set the dotted key, e.g.
// Defined("output", "line_number").
func (c *Config) Defined(key ...string) bool {
	if c == nil {
		return false
	}
	return c.meta.IsDefined(key...)
}

// Palette returns the highlight colors with file overrides applied.
func (c *Config) Palette() highlight.Palette {
	if c == nil {
		return highlight.DefaultPalette()
	}
	return c.palette
}

// Locate finds the config file. An explicit path, or else $GRAB_CONFIG, must
// exist. Otherwise $XDG_CONFIG_HOME/grab/config.toml (default ~/.config) is
// used if present; ok is false when there is no file to load.
func Locate(explicit string) (path string, ok bool, err error) {
	if explicit == "" {
		explicit = os.Getenv(EnvPath)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", false, diag.Wrap(diag.ConfigParse, explicit, err)
		}
		return explicit, true, nil
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, nil
		}
		base = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(base, app, fileName)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, diag.Wrap(diag.ConfigParse, candidate, err)
	}
	return candidate, true, nil
}

// Load decodes and validates the file at path.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, diag.Wrap(diag.ConfigParse, path, err)
	}
	cfg.Path = path
	cfg.meta = meta

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, diag.Errorf(diag.ConfigInvalid, path, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, diag.Wrap(diag.ConfigInvalid, path, err)
	}
	return cfg, nil
}

// LoadDefault locates and loads the config file, falling back to Default.
func LoadDefault(explicit string) (*Config, error) {
	path, ok, err := Locate(explicit)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) validate() error {
	if c.meta.IsDefined("output", "color") {
		switch strings.ToLower(strings.TrimSpace(c.Output.Color)) {
		case "auto", "on", "off":
		default:
			return fmt.Errorf("[output].color must be auto, on or off, got %q", c.Output.Color)
		}
	}
	colors := []struct {
		key  string
		name string
		dst  *color.Attribute
	}{
		{"match", c.Colors.Match, &c.palette.Match},
		{"line_number", c.Colors.LineNumber, &c.palette.LineNumber},
		{"separator", c.Colors.Separator, &c.palette.Separator},
	}
	for _, e := range colors {
		if !c.meta.IsDefined("colors", e.key) {
			continue
		}
		attr, err := highlight.ParseColor(e.name)
		if err != nil {
			return fmt.Errorf("[colors].%s: %w", e.key, err)
		}
		*e.dst = attr
	}
	return nil
}
