package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withTempConfig points the package at a throwaway config path for the
// duration of one test.
func withTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	SetPath(path)
	t.Cleanup(ResetPath)
	return path
}

func TestLoad_MissingFileReturnsZeroConfig(t *testing.T) {
	withTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultRegion != "" || cfg.DefaultPeriod != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	withTempConfig(t)

	cfg := &Config{DefaultRegion: "eu-west-1", DefaultPeriod: "300"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.DefaultRegion != "eu-west-1" {
		t.Errorf("DefaultRegion = %q, want %q", loaded.DefaultRegion, "eu-west-1")
	}
	if loaded.DefaultPeriod != "300" {
		t.Errorf("DefaultPeriod = %q, want %q", loaded.DefaultPeriod, "300")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := withTempConfig(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected parse error for corrupt config, got nil")
	}
}
