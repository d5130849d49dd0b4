package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != nil {
		t.Fatalf("cfg = %+v, want nil when no file exists", cfg)
	}
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "src_lang: en\ndest_lang: de\ndelay: 500ms\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.SrcLang != "en" || cfg.DestLang != "de" {
		t.Errorf("langs = %q -> %q", cfg.SrcLang, cfg.DestLang)
	}
	if cfg.Delay != 500*time.Millisecond {
		t.Errorf("Delay = %v, want 500ms", cfg.Delay)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "dest_lang: fr\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.SrcLang != "" || cfg.DestLang != "fr" || cfg.Delay != 0 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadInvalidDelay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "delay: soon\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for unparseable delay")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "src_lang: [unterminated\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
