package theme

import "nathanbeddoewebdev/hirectl/internal/util"

// Variant selects which brand identity a token table belongs to.
type Variant string

const (
	VariantTeams  Variant = "teams"
	VariantTalent Variant = "talent"
)

// Mode is the requested light/dark mode. ModeAuto is resolved through a
// Preference every time a theme is resolved.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeAuto  Mode = "auto"
)

// ColorScheme overlays an alternate colour table on the variant/mode pair.
type ColorScheme string

const (
	SchemeDefault      ColorScheme = "default"
	SchemeHighContrast ColorScheme = "high-contrast"
	SchemeColorblind   ColorScheme = "colorblind-friendly"
)

// Variants lists every brand variant in display order.
func Variants() []Variant { return []Variant{VariantTeams, VariantTalent} }

// Modes lists every mode in display order.
func Modes() []Mode { return []Mode{ModeLight, ModeDark, ModeAuto} }

// ColorSchemes lists every colour scheme in display order.
func ColorSchemes() []ColorScheme {
	return []ColorScheme{SchemeDefault, SchemeHighContrast, SchemeColorblind}
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool { return v == VariantTeams || v == VariantTalent }

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool { return m == ModeLight || m == ModeDark || m == ModeAuto }

// Valid reports whether s is one of the declared colour schemes.
func (s ColorScheme) Valid() bool {
	return s == SchemeDefault || s == SchemeHighContrast || s == SchemeColorblind
}

// Next returns the variant that follows v, wrapping around.
func (v Variant) Next() Variant {
	if v == VariantTeams {
		return VariantTalent
	}
	return VariantTeams
}

// Next returns the mode that follows m, wrapping around.
func (m Mode) Next() Mode {
	switch m {
	case ModeLight:
		return ModeDark
	case ModeDark:
		return ModeAuto
	}
	return ModeLight
}

// Next returns the colour scheme that follows s, wrapping around.
func (s ColorScheme) Next() ColorScheme {
	switch s {
	case SchemeDefault:
		return SchemeHighContrast
	case SchemeHighContrast:
		return SchemeColorblind
	}
	return SchemeDefault
}

// ParseVariant parses a variant name case-insensitively. Account role
// names are accepted as aliases, so a user's role maps straight to a
// variant.
func ParseVariant(s string) (Variant, bool) {
	switch util.NormalizeKey(s) {
	case "teams", "team", "employer", "recruiter", "company":
		return VariantTeams, true
	case "talent", "candidate", "freelancer":
		return VariantTalent, true
	}
	return "", false
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, bool) {
	m := Mode(util.NormalizeKey(s))
	if m == "system" {
		return ModeAuto, true
	}
	return m, m.Valid()
}

// ParseColorScheme parses a colour scheme name case-insensitively.
// "highcontrast", "hc" and "colorblind" are accepted as aliases.
func ParseColorScheme(s string) (ColorScheme, bool) {
	switch util.NormalizeKey(s) {
	case "default", "":
		return SchemeDefault, true
	case "high-contrast", "highcontrast", "hc":
		return SchemeHighContrast, true
	case "colorblind-friendly", "colorblind", "cvd":
		return SchemeColorblind, true
	}
	return "", false
}
