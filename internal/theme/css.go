package theme

import (
	"fmt"
	"strings"
)

// CSSPrefix is prepended to every custom property name.
const CSSPrefix = "--brand-"

// ToCSSVariables flattens a theme into CSS custom properties. The
// result depends only on t. Tertiary, gradient and transition entries
// are present only when the theme carries them.
func ToCSSVariables(t ResolvedTheme) map[string]string {
	c := t.Colors
	vars := map[string]string{
		"primary":              c.Primary,
		"secondary":            c.Secondary,
		"background":           c.Background,
		"surface":              c.Surface,
		"text-primary":         c.Text.Primary,
		"text-secondary":       c.Text.Secondary,
		"text-tertiary":        c.Text.Tertiary,
		"text-inverse":         c.Text.Inverse,
		"text-disabled":        c.Text.Disabled,
		"border":               c.Border,
		"shadow":               c.Shadow,
		"success":              c.Status.Success,
		"warning":              c.Status.Warning,
		"error":                c.Status.Error,
		"info":                 c.Status.Info,
		"interactive-hover":    c.Interactive.Hover,
		"interactive-active":   c.Interactive.Active,
		"interactive-focus":    c.Interactive.Focus,
		"interactive-disabled": c.Interactive.Disabled,

		"font-family":          t.Typography.FontFamily,
		"font-mono":            t.Typography.MonoFamily,
		"font-size-xs":         t.Typography.Sizes.XS,
		"font-size-sm":         t.Typography.Sizes.SM,
		"font-size-base":       t.Typography.Sizes.Base,
		"font-size-lg":         t.Typography.Sizes.LG,
		"font-size-xl":         t.Typography.Sizes.XL,
		"font-size-2xl":        t.Typography.Sizes.XXL,
		"font-weight-regular":  t.Typography.Weights.Regular,
		"font-weight-medium":   t.Typography.Weights.Medium,
		"font-weight-semibold": t.Typography.Weights.Semibold,
		"font-weight-bold":     t.Typography.Weights.Bold,
		"line-height-tight":    t.Typography.LineHeights.Tight,
		"line-height-normal":   t.Typography.LineHeights.Normal,
		"line-height-relaxed":  t.Typography.LineHeights.Relaxed,

		"spacing-xs":  t.Spacing.XS,
		"spacing-sm":  t.Spacing.SM,
		"spacing-md":  t.Spacing.MD,
		"spacing-lg":  t.Spacing.LG,
		"spacing-xl":  t.Spacing.XL,
		"spacing-2xl": t.Spacing.XXL,

		"radius-sm":   t.Radius.SM,
		"radius-md":   t.Radius.MD,
		"radius-lg":   t.Radius.LG,
		"radius-full": t.Radius.Full,

		"shadow-sm": t.Shadows.SM,
		"shadow-md": t.Shadows.MD,
		"shadow-lg": t.Shadows.LG,
		"shadow-xl": t.Shadows.XL,
	}

	if c.Tertiary != "" {
		vars["tertiary"] = c.Tertiary
	}
	if g := c.Gradients; g != nil {
		if g.Primary != "" {
			vars["gradient-primary"] = g.Primary
		}
		if g.Hero != "" {
			vars["gradient-hero"] = g.Hero
		}
	}
	if a := t.Animation; a != nil {
		vars["transition-fast"] = transition(a.Fast, a.Easing)
		vars["transition-normal"] = transition(a.Normal, a.Easing)
		vars["transition-slow"] = transition(a.Slow, a.Easing)
	}

	out := make(map[string]string, len(vars))
	for k, v := range vars {
		out[CSSPrefix+k] = v
	}
	return out
}

func transition(d, easing string) string {
	if easing == "" {
		return d
	}
	return d + " " + easing
}

// RenderCSS writes vars as a single rule block with keys in sorted order.
// An empty selector defaults to ":root".
func RenderCSS(vars map[string]string, selector string) string {
	if selector == "" {
		selector = ":root"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", selector)
	for _, k := range sortedKeys(vars) {
		fmt.Fprintf(&b, "  %s: %s;\n", k, vars[k])
	}
	b.WriteString("}\n")
	return b.String()
}
