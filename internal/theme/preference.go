package theme

import (
	"os"
	"strconv"

	"github.com/muesli/termenv"
)

// Preference reports the environment's light/dark preference. It is
// consulted every time a theme in ModeAuto is resolved.
type Preference interface {
	PrefersDark() bool
}

// EnvDarkVar overrides terminal detection when set to a boolean.
const EnvDarkVar = "HIRECTL_THEME_DARK"

// TerminalPreference queries the terminal's background colour.
type TerminalPreference struct{}

func (TerminalPreference) PrefersDark() bool { return termenv.HasDarkBackground() }

// StaticPreference always returns the same answer.
type StaticPreference bool

func (p StaticPreference) PrefersDark() bool { return bool(p) }

// EnvPreference reads EnvDarkVar and falls back to another Preference
// when the variable is unset or not a boolean.
type EnvPreference struct {
	Fallback Preference
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

func (p EnvPreference) PrefersDark() bool {
	getenv := p.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v, err := strconv.ParseBool(getenv(EnvDarkVar)); err == nil {
		return v
	}
	if p.Fallback == nil {
		return false
	}
	return p.Fallback.PrefersDark()
}

// DefaultPreference is the env override layered over terminal detection.
func DefaultPreference() Preference {
	return EnvPreference{Fallback: TerminalPreference{}}
}
