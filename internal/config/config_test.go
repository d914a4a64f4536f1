package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Session.File != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigSessionValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[session]
file = "drills/home-row.txt"
words = 30
color = false
auto-submit = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Session.File == nil || *cfg.Session.File != "drills/home-row.txt" {
		t.Fatalf("unexpected file: %v", cfg.Session.File)
	}
	if cfg.Session.Words == nil || *cfg.Session.Words != 30 {
		t.Fatalf("unexpected words: %v", cfg.Session.Words)
	}
	if cfg.Session.Color == nil || *cfg.Session.Color {
		t.Fatalf("expected color=false")
	}
	if cfg.Session.AutoSubmit == nil || !*cfg.Session.AutoSubmit {
		t.Fatalf("expected auto-submit=true")
	}
	if cfg.Session.Scored != nil {
		t.Fatalf("expected scored to be unset")
	}
}

func TestLoadConfigUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[session]\nwords = 5\ncolour = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	var unknown *UnknownKeysError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownKeysError, got %v", err)
	}
	if len(unknown.Keys) != 1 || unknown.Keys[0] != "session.colour" {
		t.Fatalf("unexpected keys: %v", unknown.Keys)
	}
	if cfg.Session.Words == nil || *cfg.Session.Words != 5 {
		t.Fatalf("expected known keys to decode")
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "retype", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
