package config

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/hirectl/internal/config"
)

func TestGet_ThemeMode_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "theme-mode")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_ThemeMode_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{ThemeMode: "dark"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "theme-mode")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "dark") {
		t.Errorf("expected 'dark', got: %s", stdout)
	}
}

func TestGet_EnvOverride(t *testing.T) {
	setupTestConfig(t)
	t.Setenv("HIRECTL_REQUEST_TIMEOUT", "5s")

	stdout, _ := execConfig(t, "get", "request-timeout")

	if strings.TrimSpace(stdout) != "5s" {
		t.Errorf("expected env value, got: %s", stdout)
	}
}

func TestGet_ListsAllKeysWhenNotInteractive(t *testing.T) {
	setupTestConfig(t)

	stdout, _ := execConfig(t, "get")

	for _, name := range config.KeyNames() {
		if !strings.Contains(stdout, name+": ") {
			t.Errorf("expected %q in listing:\n%s", name, stdout)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
