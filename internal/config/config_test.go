package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	var stderr strings.Builder
	cfg := Load(filepath.Join(t.TempDir(), ".plangen.yaml"), &stderr)

	if cfg.Input != DefaultInputPath {
		t.Errorf("expected default input %q, got %q", DefaultInputPath, cfg.Input)
	}
	if cfg.Output != DefaultOutputPath {
		t.Errorf("expected default output %q, got %q", DefaultOutputPath, cfg.Output)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("expected default title, got %q", cfg.Title)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".plangen.yaml")
	content := "input: custom/results.json\ntitle: Custom Title\nno_color: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr strings.Builder
	cfg := Load(path, &stderr)

	if cfg.Input != "custom/results.json" {
		t.Errorf("expected file input, got %q", cfg.Input)
	}
	if cfg.Output != DefaultOutputPath {
		t.Errorf("unset file fields must keep defaults, got %q", cfg.Output)
	}
	if cfg.Title != "Custom Title" {
		t.Errorf("expected file title, got %q", cfg.Title)
	}
	if !cfg.NoColor {
		t.Error("expected no_color from file")
	}
}

func TestLoad_BadYAMLWarnsAndUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".plangen.yaml")
	if err := os.WriteFile(path, []byte("input: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr strings.Builder
	cfg := Load(path, &stderr)

	if cfg.Input != DefaultInputPath {
		t.Errorf("expected defaults after parse error, got %q", cfg.Input)
	}
	if !strings.Contains(stderr.String(), "Warning") {
		t.Error("expected a warning on stderr")
	}
}

func TestMerge_FlagsWin(t *testing.T) {
	cfg := &Config{Input: "a.json", Output: "a.xlsx", Title: "A", NoColor: true}
	Merge(cfg, Flags{Input: "b.json", InputSet: true, NoColor: false, NoColorSet: true})

	if cfg.Input != "b.json" {
		t.Errorf("expected flag input, got %q", cfg.Input)
	}
	if cfg.Output != "a.xlsx" {
		t.Errorf("unset flags must not clobber config, got %q", cfg.Output)
	}
	if cfg.NoColor {
		t.Error("explicitly set -no-color=false must override the file")
	}
}

func TestMerge_ExplicitEmptyStringOverrides(t *testing.T) {
	cfg := &Config{Input: "a.json", Output: "a.xlsx", Title: "A"}
	Merge(cfg, Flags{Title: "", TitleSet: true})

	if cfg.Title != "" {
		t.Errorf("explicitly set -title \"\" must override the file, got %q", cfg.Title)
	}
	if cfg.Input != "a.json" || cfg.Output != "a.xlsx" {
		t.Errorf("unset flags must not clobber config, got %q/%q", cfg.Input, cfg.Output)
	}
}

func TestMerge_UnsetNoColorKeepsConfig(t *testing.T) {
	cfg := &Config{NoColor: true}
	Merge(cfg, Flags{})
	if !cfg.NoColor {
		t.Error("unset -no-color must keep the config file value")
	}
}
