package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadFileFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("expected zero config (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hirectl", "config.json")

	want := &Config{
		APIURL:         "https://staging.example.com/api",
		BrandVariant:   "talent",
		ThemeMode:      "dark",
		ColorScheme:    "high-contrast",
		RequestTimeout: "10s",
		LogFile:        "/tmp/hirectl.log",
	}
	if err := want.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadFileFrom(path)
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

	cfg := &Config{ThemeMode: "light"}
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

	if _, err := LoadFileFrom(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := (&Config{ThemeMode: "light", APIURL: "https://file.example.com"}).SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	t.Setenv("HIRECTL_THEME_MODE", "dark")
	t.Setenv("HIRECTL_COLOR_SCHEME", "colorblind-friendly")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ThemeMode != "dark" {
		t.Errorf("ThemeMode = %q, want env value %q", cfg.ThemeMode, "dark")
	}
	if cfg.ColorScheme != "colorblind-friendly" {
		t.Errorf("ColorScheme = %q, want env value", cfg.ColorScheme)
	}
	if cfg.APIURL != "https://file.example.com" {
		t.Errorf("APIURL = %q, want file value", cfg.APIURL)
	}

	fileOnly, err := LoadFileFrom(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if fileOnly.ThemeMode != "light" {
		t.Errorf("LoadFile ThemeMode = %q, env leaked into file-only load", fileOnly.ThemeMode)
	}
}

func TestLoad_EnvWithoutFile(t *testing.T) {
	t.Setenv("HIRECTL_API_URL", "https://env.example.com")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("APIURL = %q, want env value", cfg.APIURL)
	}
}

func TestPathOverride(t *testing.T) {
	t.Cleanup(ResetPath)
	want := filepath.Join(t.TempDir(), "c.json")
	SetPath(want)

	got, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestBaseURL(t *testing.T) {
	if got := (&Config{}).BaseURL(); got != DefaultAPIURL {
		t.Errorf("default BaseURL = %q", got)
	}
	if got := (&Config{APIURL: "https://x.example.com/api/"}).BaseURL(); got != "https://x.example.com/api" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", got)
	}
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", DefaultRequestTimeout},
		{"garbage", DefaultRequestTimeout},
		{"-5s", DefaultRequestTimeout},
		{"5s", 5 * time.Second},
		{" 2m ", 2 * time.Minute},
	}
	for _, tt := range tests {
		if got := (&Config{RequestTimeout: tt.in}).Timeout(); got != tt.want {
			t.Errorf("Timeout(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
