package review

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "porcelain" {
		t.Fatalf("theme: got %q", cfg.Theme)
	}
	if cfg.ProcessingDelay() != 4*time.Second {
		t.Fatalf("processing delay: got %v", cfg.ProcessingDelay())
	}
	if cfg.CopiedNotice() != 2*time.Second {
		t.Fatalf("copied notice: got %v", cfg.CopiedNotice())
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "theme: midnight\nreduce_motion: true\nprocessing_delay_ms: 50\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "midnight" || !cfg.ReduceMotion {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.ProcessingDelay() != 50*time.Millisecond {
		t.Fatalf("processing delay: got %v", cfg.ProcessingDelay())
	}
	// Unset knobs still fall back to defaults.
	if cfg.HighlightDuration() != 3*time.Second {
		t.Fatalf("highlight: got %v", cfg.HighlightDuration())
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "midnight"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Theme != "midnight" {
		t.Fatalf("theme: got %q", got.Theme)
	}
}
