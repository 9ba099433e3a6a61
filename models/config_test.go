package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error = %v", err)
	}
	if cfg.SourceURL != "https://academia.gal/dicionario" {
		t.Errorf("SourceURL = %q", cfg.SourceURL)
	}
	if cfg.WeekListClass == "" || cfg.ContainerID == "" || cfg.ItemClass == "" {
		t.Error("default selectors must not be empty")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "source_url: https://example.test/dict\nweek_list_class: custom-week\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SourceURL != "https://example.test/dict" {
		t.Errorf("SourceURL = %q, want override", cfg.SourceURL)
	}
	if cfg.WeekListClass != "custom-week" {
		t.Errorf("WeekListClass = %q, want override", cfg.WeekListClass)
	}
	// Untouched fields keep their defaults.
	if cfg.ItemClass != DefaultConfig().ItemClass {
		t.Errorf("ItemClass = %q, want default", cfg.ItemClass)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() on missing file succeeded, want error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("source_url: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() on malformed YAML succeeded, want error")
	}

	empty := filepath.Join(t.TempDir(), "empty-url.yaml")
	if err := os.WriteFile(empty, []byte("source_url: \"\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(empty); err == nil {
		t.Error("LoadConfig() with empty source_url succeeded, want error")
	}
}
