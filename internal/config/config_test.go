package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"grab/internal/diag"
	"grab/internal/highlight"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "grab.toml", `
[output]
color = "on"
line_number = true
group_separator = "--"

[search]
ignore_case = true

[colors]
separator = "bright-yellow"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Color != "on" || !cfg.Output.LineNumber || cfg.Output.GroupSeparator != "--" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if !cfg.Search.IgnoreCase {
		t.Error("ignore_case not read")
	}
	if !cfg.Defined("output", "line_number") {
		t.Error("output.line_number should be defined")
	}
	if cfg.Defined("output", "merge_groups") {
		t.Error("output.merge_groups should not be defined")
	}
	want := highlight.DefaultPalette()
	want.Separator = color.FgHiYellow
	if got := cfg.Palette(); got != want {
		t.Errorf("Palette() = %+v, want %+v", got, want)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q", cfg.Path)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    diag.Code
		substr  string
	}{
		{"syntax", "[output\ncolor = 1", diag.ConfigParse, ""},
		{"wrong type", "[output]\nline_number = \"yes\"", diag.ConfigParse, ""},
		{"unknown key", "[output]\ncolour = \"on\"", diag.ConfigInvalid, "output.colour"},
		{"bad mode", "[output]\ncolor = \"sometimes\"", diag.ConfigInvalid, "sometimes"},
		{"bad color", "[colors]\nmatch = \"mauve\"", diag.ConfigInvalid, "[colors].match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "c.toml", tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := diag.CodeOf(err); got != tt.code {
				t.Errorf("code = %s, want %s (%v)", got.ID(), tt.code.ID(), err)
			}
			if tt.substr != "" && !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q lacks %q", err, tt.substr)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvPath, "")

	if _, ok, err := Locate(""); ok || err != nil {
		t.Fatalf("Locate with no file = %v, %v", ok, err)
	}

	xdg := writeFile(t, dir, filepath.Join("grab", "config.toml"), "")
	if path, ok, err := Locate(""); !ok || err != nil || path != xdg {
		t.Errorf("Locate = %q, %v, %v; want %q", path, ok, err, xdg)
	}

	env := writeFile(t, t.TempDir(), "env.toml", "")
	t.Setenv(EnvPath, env)
	if path, _, _ := Locate(""); path != env {
		t.Errorf("$%s ignored: got %q", EnvPath, path)
	}

	explicit := writeFile(t, t.TempDir(), "flag.toml", "")
	if path, _, _ := Locate(explicit); path != explicit {
		t.Errorf("explicit path ignored: got %q", path)
	}

	_, _, err := Locate(filepath.Join(dir, "missing.toml"))
	if !diag.Is(err, diag.ConfigParse) {
		t.Errorf("missing explicit file: err = %v", err)
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvPath, "")
	cfg, err := LoadDefault("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Defined("output", "color") {
		t.Error("default config defines keys")
	}
	if cfg.Palette() != highlight.DefaultPalette() {
		t.Error("default palette expected")
	}
}
