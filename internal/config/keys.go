package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"nathanbeddoewebdev/hirectl/internal/theme"
	"nathanbeddoewebdev/hirectl/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "api-url").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate rejects malformed values before Set. Nil accepts anything.
	Validate func(value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "api-url",
		Description: "Base URL of the hiring platform API",
		Get:         func(cfg *Config) string { return cfg.APIURL },
		Set:         func(cfg *Config, v string) { cfg.APIURL = v },
		Validate:    validateURL,
	},
	{
		Name:        "brand-variant",
		Description: "Brand variant when no user is signed in (teams, talent)",
		Get:         func(cfg *Config) string { return cfg.BrandVariant },
		Set:         func(cfg *Config, v string) { cfg.BrandVariant = v },
		Validate:    enumValidator("brand variant", func(s string) bool { _, ok := theme.ParseVariant(s); return ok }),
	},
	{
		Name:        "theme-mode",
		Description: "Theme mode (light, dark, auto)",
		Get:         func(cfg *Config) string { return cfg.ThemeMode },
		Set:         func(cfg *Config, v string) { cfg.ThemeMode = v },
		Validate:    enumValidator("theme mode", func(s string) bool { _, ok := theme.ParseMode(s); return ok }),
	},
	{
		Name:        "color-scheme",
		Description: "Colour scheme (default, high-contrast, colorblind-friendly)",
		Get:         func(cfg *Config) string { return cfg.ColorScheme },
		Set:         func(cfg *Config, v string) { cfg.ColorScheme = v },
		Validate:    enumValidator("colour scheme", func(s string) bool { _, ok := theme.ParseColorScheme(s); return ok }),
	},
	{
		Name:        "request-timeout",
		Description: "Per-request API timeout, e.g. 30s",
		Get:         func(cfg *Config) string { return cfg.RequestTimeout },
		Set:         func(cfg *Config, v string) { cfg.RequestTimeout = v },
		Validate:    validateDuration,
	},
	{
		Name:        "log-file",
		Description: "Log file used while the interactive UI is running",
		Get:         func(cfg *Config) string { return cfg.LogFile },
		Set:         func(cfg *Config, v string) { cfg.LogFile = v },
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		maxLen = max(maxLen, len(k.Name))
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

func validateURL(v string) error {
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an http(s) URL", v)
	}
	return nil
}

func validateDuration(v string) error {
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fmt.Errorf("%q is not a positive duration", v)
	}
	return nil
}

func enumValidator(what string, ok func(string) bool) func(string) error {
	return func(v string) error {
		if !ok(v) {
			return fmt.Errorf("unknown %s %q", what, v)
		}
		return nil
	}
}
