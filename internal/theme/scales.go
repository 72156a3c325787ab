package theme

// Non-colour token tables. They do not depend on the colour scheme; only
// the font family differs between variants.

var fontFamilies = map[Variant]string{
	VariantTeams:  "'Inter', 'Segoe UI', system-ui, sans-serif",
	VariantTalent: "'Plus Jakarta Sans', 'Segoe UI', system-ui, sans-serif",
}

const monoFamily = "'JetBrains Mono', 'SFMono-Regular', Menlo, monospace"

var baseTypography = Typography{
	MonoFamily: monoFamily,
	Sizes: FontSizes{
		XS:   "0.75rem",
		SM:   "0.875rem",
		Base: "1rem",
		LG:   "1.125rem",
		XL:   "1.25rem",
		XXL:  "1.5rem",
	},
	Weights: FontWeights{
		Regular:  "400",
		Medium:   "500",
		Semibold: "600",
		Bold:     "700",
	},
	LineHeights: LineHeights{
		Tight:   "1.25",
		Normal:  "1.5",
		Relaxed: "1.75",
	},
}

var baseSpacing = Spacing{
	XS:  "0.25rem",
	SM:  "0.5rem",
	MD:  "1rem",
	LG:  "1.5rem",
	XL:  "2rem",
	XXL: "3rem",
}

var baseRadius = Radius{
	SM:   "0.25rem",
	MD:   "0.5rem",
	LG:   "1rem",
	Full: "9999px",
}

// shadowTemplates take the colour table's Shadow slot.
var shadowTemplates = Shadows{
	SM: "0 1px 2px 0 %s",
	MD: "0 4px 6px -1px %s",
	LG: "0 10px 15px -3px %s",
	XL: "0 20px 25px -5px %s",
}

var baseAnimation = Animation{
	Fast:   "150ms",
	Normal: "250ms",
	Slow:   "400ms",
	Easing: "cubic-bezier(0.4, 0, 0.2, 1)",
}

var baseBreakpoints = Breakpoints{
	SM: 640,
	MD: 768,
	LG: 1024,
	XL: 1280,
}
