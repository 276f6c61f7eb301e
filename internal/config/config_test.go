package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test morph defaults
	if cfg.Morph.MaxTargets != 256 {
		t.Errorf("expected max_targets 256, got %d", cfg.Morph.MaxTargets)
	}
	if cfg.Morph.MaxActiveTargets != 64 {
		t.Errorf("expected max_active_targets 64, got %d", cfg.Morph.MaxActiveTargets)
	}

	// Test state defaults
	if cfg.State.File != "" {
		t.Errorf("expected empty state file, got %s", cfg.State.File)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "charforge.yaml")
	content := []byte("morph:\n  max_targets: 128\n  max_active_targets: 32\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Morph.MaxTargets != 128 {
		t.Errorf("expected max_targets 128, got %d", cfg.Morph.MaxTargets)
	}
	if cfg.Morph.MaxActiveTargets != 32 {
		t.Errorf("expected max_active_targets 32, got %d", cfg.Morph.MaxActiveTargets)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_save_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := Default()
	cfg.Morph.MaxActiveTargets = 48
	cfg.State.File = "hero.yaml"

	path := filepath.Join(tempDir, "nested", "charforge.yaml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Morph.MaxActiveTargets != 48 {
		t.Errorf("expected max_active_targets 48, got %d", loaded.Morph.MaxActiveTargets)
	}
	if loaded.State.File != "hero.yaml" {
		t.Errorf("expected state file hero.yaml, got %s", loaded.State.File)
	}
}
