package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csfmt.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
indent_width = 2
use_tabs = true
keep_blocks_on_single_line = false
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.IndentWidth != 2 || !f.UseTabs || f.KeepBlocksOnSingleLine {
		t.Fatalf("unexpected options %+v", f)
	}
	// Keys the file does not mention keep their defaults.
	if !f.KeepAccessorsOnSingleLine {
		t.Fatalf("unset key lost its default: %+v", f)
	}
}

func TestLoadExplicitFalseSticks(t *testing.T) {
	path := writeConfig(t, "keep_accessors_on_single_line = false\n")
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.KeepAccessorsOnSingleLine {
		t.Fatal("explicit false was overridden by the default")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "indent_wdith = 2\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f != Default() {
		t.Fatalf("got %+v, want defaults", f)
	}
}

func TestLoadClampsIndentWidth(t *testing.T) {
	path := writeConfig(t, "indent_width = -1\n")
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.IndentWidth != 4 {
		t.Fatalf("IndentWidth = %d, want 4", f.IndentWidth)
	}
}
