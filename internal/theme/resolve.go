package theme

import "fmt"

// Fallback triple used when stringly-typed input does not parse.
const (
	FallbackVariant = VariantTeams
	FallbackMode    = ModeLight
	FallbackScheme  = SchemeDefault
)

// Resolve builds the theme for one (variant, mode, scheme) triple.
//
// ModeAuto is resolved through pref on every call; a nil pref means
// light. Any value outside its enum fails closed to the fallback triple.
func Resolve(variant Variant, mode Mode, scheme ColorScheme, pref Preference) ResolvedTheme {
	if !variant.Valid() || !mode.Valid() || !scheme.Valid() {
		variant, mode, scheme = FallbackVariant, FallbackMode, FallbackScheme
	}

	dark := mode == ModeDark
	if mode == ModeAuto {
		dark = pref != nil && pref.PrefersDark()
	}
	effective := ModeLight
	if dark {
		effective = ModeDark
	}

	colors := paletteFor(scheme)[variant].pick(dark)

	typo := baseTypography
	typo.FontFamily = fontFamilies[variant]

	anim := baseAnimation

	return ResolvedTheme{
		Variant:     variant,
		Mode:        effective,
		Scheme:      scheme,
		Colors:      colors,
		Typography:  typo,
		Spacing:     baseSpacing,
		Radius:      baseRadius,
		Shadows:     shadowsFor(colors.Shadow),
		Animation:   &anim,
		Breakpoints: baseBreakpoints,
	}
}

// ResolveStrings parses the triple and resolves it. If any value fails to
// parse, the whole triple is replaced by the fallback.
func ResolveStrings(variant, mode, scheme string, pref Preference) ResolvedTheme {
	v, okV := ParseVariant(variant)
	m, okM := ParseMode(mode)
	s, okS := ParseColorScheme(scheme)
	if !okV || !okM || !okS {
		return Resolve(FallbackVariant, FallbackMode, FallbackScheme, pref)
	}
	return Resolve(v, m, s, pref)
}

// VariantForRole maps an account role name to a brand variant.
func VariantForRole(role string) Variant {
	if v, ok := ParseVariant(role); ok {
		return v
	}
	return FallbackVariant
}

func paletteFor(scheme ColorScheme) map[Variant]modePair {
	switch scheme {
	case SchemeHighContrast:
		return highContrastPalettes
	case SchemeColorblind:
		return colorblindPalettes
	}
	return defaultPalettes
}

func shadowsFor(color string) Shadows {
	return Shadows{
		SM: fmt.Sprintf(shadowTemplates.SM, color),
		MD: fmt.Sprintf(shadowTemplates.MD, color),
		LG: fmt.Sprintf(shadowTemplates.LG, color),
		XL: fmt.Sprintf(shadowTemplates.XL, color),
	}
}
