// Package config handles persistent user configuration for hirectl.
//
// Configuration is stored as JSON at ~/.config/hirectl/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). Every key can be
// overridden by a HIRECTL_* environment variable, e.g. HIRECTL_API_URL.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	appDir    = "hirectl"
	fileName  = "config.json"
	envPrefix = "HIRECTL"
)

// Defaults applied when a key is unset.
const (
	DefaultAPIURL         = "https://api.hirectl.app/v1"
	DefaultRequestTimeout = 30 * time.Second
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	APIURL         string `json:"api_url,omitempty" mapstructure:"api_url"`
	BrandVariant   string `json:"brand_variant,omitempty" mapstructure:"brand_variant"`
	ThemeMode      string `json:"theme_mode,omitempty" mapstructure:"theme_mode"`
	ColorScheme    string `json:"color_scheme,omitempty" mapstructure:"color_scheme"`
	RequestTimeout string `json:"request_timeout,omitempty" mapstructure:"request_timeout"`
	LogFile        string `json:"log_file,omitempty" mapstructure:"log_file"`
}

// fileKeys are the JSON/mapstructure keys, used to bind env variables.
var fileKeys = []string{"api_url", "brand_variant", "theme_mode", "color_scheme", "request_timeout", "log_file"}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
// Otherwise it uses os.UserConfigDir which resolves to
// ~/Library/Application Support on macOS, ~/.config on Linux, and
// %AppData% on Windows.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file and applies HIRECTL_* environment
// overrides. A missing file yields a zero-value Config (not an error).
func Load() (*Config, error) {
	return loadFrom("", true)
}

// LoadFile reads only the config file, ignoring the environment. Use it
// before Save so env overrides are not written back to disk.
func LoadFile() (*Config, error) {
	return loadFrom("", false)
}

func loadFrom(path string, withEnv bool) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if withEnv {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		for _, k := range fileKeys {
			if err := v.BindEnv(k); err != nil {
				return nil, fmt.Errorf("config: bind env for %s: %w", k, err)
			}
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config and env overrides from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path, true)
}

// LoadFileFrom reads the config from the given path without env overrides. Intended for testing.
func LoadFileFrom(path string) (*Config, error) {
	return loadFrom(path, false)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Config) BaseURL() string {
	u := strings.TrimSpace(c.APIURL)
	if u == "" {
		u = DefaultAPIURL
	}
	return strings.TrimRight(u, "/")
}

// Timeout returns the per-request timeout. Unparseable or non-positive
// values fall back to DefaultRequestTimeout.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.RequestTimeout))
	if err != nil || d <= 0 {
		return DefaultRequestTimeout
	}
	return d
}

// LogPath returns the log file path, defaulting to hirectl.log in the
// user cache directory.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDir+".log")
	}
	return filepath.Join(base, appDir, appDir+".log")
}
