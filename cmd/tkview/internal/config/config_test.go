package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-tkview/tkview/pkg/theme"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputDir != "" {
		t.Errorf("expected empty OutputDir, got %q", cfg.OutputDir)
	}
	if cfg.Theme != theme.Default() {
		t.Errorf("expected default theme, got %+v", cfg.Theme)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	data := []byte("outputDir: previews\ntheme:\n  fontSize: 15\n  windowBackground: \"#202020\"\n")
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputDir != "previews" {
		t.Errorf("expected OutputDir %q, got %q", "previews", cfg.OutputDir)
	}
	if cfg.Theme.FontSize != 15 {
		t.Errorf("expected FontSize 15, got %d", cfg.Theme.FontSize)
	}
	if cfg.Theme.WindowBackground != "#202020" {
		t.Errorf("expected WindowBackground %q, got %q", "#202020", cfg.Theme.WindowBackground)
	}
	// untouched fields keep their defaults
	if cfg.Theme.FontFamily != theme.Default().FontFamily {
		t.Errorf("expected default FontFamily, got %q", cfg.Theme.FontFamily)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("outputDir: [oops"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
