package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultProvider != "" {
		t.Errorf("expected empty DefaultProvider, got %q", cfg.DefaultProvider)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skm", "config.json")

	want := &Config{DefaultProvider: "digitalocean"}
	if err := want.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	path := filepath.Join(dir, "config.json")

	cfg := &Config{DefaultProvider: "hetzner"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLookup(t *testing.T) {
	if spec := Lookup("default-provider"); spec == nil {
		t.Fatal("expected to find default-provider key")
	}
	if spec := Lookup("  DEFAULT-PROVIDER "); spec == nil {
		t.Error("expected lookup to be case-insensitive and trimmed")
	}
	if spec := Lookup("unknown"); spec != nil {
		t.Errorf("expected nil for unknown key, got %v", spec.Name)
	}
}

func TestKeySpec_RoundTrip(t *testing.T) {
	cfg := &Config{}
	spec := Lookup("default-provider")

	spec.Set(cfg, "digitalocean")
	if got := spec.Get(cfg); got != "digitalocean" {
		t.Errorf("expected 'digitalocean', got %q", got)
	}
}
