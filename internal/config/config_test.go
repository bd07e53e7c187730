package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if len(cfg.Exclude) != 0 || cfg.MinLines != 0 {
		t.Errorf("missing config should be zero: %+v", cfg)
	}
}

func TestLoadValidFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("exclude:\n  - '*.pb.go'\n  - '*_gen.go'\nmin_lines: 4\n")
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "*.pb.go" {
		t.Errorf("exclude = %v, want two globs", cfg.Exclude)
	}
	if cfg.MinLines != 4 {
		t.Errorf("min_lines = %d, want 4", cfg.MinLines)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("exclude: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("malformed config should error")
	}
}
