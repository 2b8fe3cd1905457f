package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.View.Dark != nil || cfg.View.Particles != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[view]\ndark = true\nparticles = 5\nthreshold = 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.View.Dark == nil || !*cfg.View.Dark {
		t.Fatalf("expected dark = true")
	}
	if cfg.View.Particles == nil || *cfg.View.Particles != 5 {
		t.Fatalf("expected particles = 5")
	}
	if cfg.View.Threshold == nil || *cfg.View.Threshold != 0.5 {
		t.Fatalf("expected threshold = 0.5")
	}
	if cfg.View.Mouse != nil {
		t.Fatalf("expected mouse unset")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[view]\ndarkmode = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "darkmode") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/xdg", "folio", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
}
