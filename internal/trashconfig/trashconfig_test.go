package trashconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	current = nil

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UseTopDirs || !cfg.CheckStickyBit || !cfg.FallbackToUserDir || !cfg.FallbackToHomeDir {
		t.Fatalf("expected default-true flags, got %+v", cfg)
	}
	if cfg.BypassTrash {
		t.Fatal("expected BypassTrash false by default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	current = nil

	cfg := Default()
	cfg.BypassTrash = true
	cfg.UseTopDirs = false

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	current = nil
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.BypassTrash || loaded.UseTopDirs {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}

	if _, err := os.Stat(filepath.Join(dir, "trashcan", "config.json")); err != nil {
		t.Fatalf("expected config file on disk: %v", err)
	}
}

func TestLoadIgnoresCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	current = nil

	configDir := filepath.Join(dir, "trashcan")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UseTopDirs {
		t.Fatal("expected fallback to defaults on corrupt file")
	}
}
