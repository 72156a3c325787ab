package theme

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a token slot does not hold a
// recognisable CSS colour.
var ErrInvalidColor = errors.New("invalid colour")

var funcColorRe = regexp.MustCompile(`^(rgba?|hsla?)\(\s*([^)]*)\)$`)

// ParseColor parses the CSS colour forms used by the token tables: hex
// (#rgb, #rrggbb), rgb()/rgba(), hsl()/hsla() and "transparent". Alpha
// is parsed and validated but not returned.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return colorful.Color{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if s == "transparent" {
		return colorful.Color{}, nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	m := funcColorRe.FindStringSubmatch(s)
	if m == nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	fn, args := m[1], strings.Split(m[2], ",")
	want := 3
	if strings.HasSuffix(fn, "a") {
		want = 4
	}
	if len(args) != want {
		return colorful.Color{}, fmt.Errorf("%w: %q takes %d arguments", ErrInvalidColor, fn, want)
	}

	nums := make([]float64, len(args))
	for i, a := range args {
		a = strings.TrimSuffix(strings.TrimSpace(a), "%")
		n, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		nums[i] = n
	}
	if want == 4 && (nums[3] < 0 || nums[3] > 1) {
		return colorful.Color{}, fmt.Errorf("%w: alpha out of range in %q", ErrInvalidColor, s)
	}

	if strings.HasPrefix(fn, "rgb") {
		for _, n := range nums[:3] {
			if n < 0 || n > 255 {
				return colorful.Color{}, fmt.Errorf("%w: channel out of range in %q", ErrInvalidColor, s)
			}
		}
		return colorful.Color{R: nums[0] / 255, G: nums[1] / 255, B: nums[2] / 255}, nil
	}
	if nums[1] < 0 || nums[1] > 100 || nums[2] < 0 || nums[2] > 100 {
		return colorful.Color{}, fmt.Errorf("%w: percentage out of range in %q", ErrInvalidColor, s)
	}
	return colorful.Hsl(math.Mod(nums[0], 360), nums[1]/100, nums[2]/100).Clamped(), nil
}

// requiredSlots lists the colour slots every theme must fill.
func requiredSlots(c ColorTokens) map[string]string {
	return map[string]string{
		"primary":              c.Primary,
		"secondary":            c.Secondary,
		"background":           c.Background,
		"surface":              c.Surface,
		"text.primary":         c.Text.Primary,
		"text.secondary":       c.Text.Secondary,
		"text.tertiary":        c.Text.Tertiary,
		"text.inverse":         c.Text.Inverse,
		"text.disabled":        c.Text.Disabled,
		"border":               c.Border,
		"shadow":               c.Shadow,
		"status.success":       c.Status.Success,
		"status.warning":       c.Status.Warning,
		"status.error":         c.Status.Error,
		"status.info":          c.Status.Info,
		"interactive.hover":    c.Interactive.Hover,
		"interactive.active":   c.Interactive.Active,
		"interactive.focus":    c.Interactive.Focus,
		"interactive.disabled": c.Interactive.Disabled,
	}
}

// Validate checks that every required colour slot holds a valid colour,
// and that the optional tertiary slot is valid when set. All problems
// are joined into one error.
func Validate(t ResolvedTheme) error {
	var errs []error
	slots := requiredSlots(t.Colors)
	if t.Colors.Tertiary != "" {
		slots["tertiary"] = t.Colors.Tertiary
	}
	for _, name := range sortedKeys(slots) {
		if _, err := ParseColor(slots[name]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// ContrastRatio returns the WCAG 2.x contrast ratio between two colours,
// in the range [1, 21].
func ContrastRatio(fg, bg string) (float64, error) {
	a, err := ParseColor(fg)
	if err != nil {
		return 0, err
	}
	b, err := ParseColor(bg)
	if err != nil {
		return 0, err
	}
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// WCAG thresholds for normal-size text.
const (
	ContrastAA  = 4.5
	ContrastAAA = 7.0
)

// ContrastCheck is one foreground/background pairing reported by Audit.
type ContrastCheck struct {
	Name       string  `json:"name"`
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	AA         bool    `json:"aa"`
	AAA        bool    `json:"aaa"`
}

// Audit measures the contrast of the pairings that carry text. The
// result is informational; nothing rejects a theme for failing it.
func Audit(t ResolvedTheme) ([]ContrastCheck, error) {
	c := t.Colors
	pairs := []struct{ name, fg, bg string }{
		{"text.inverse on primary", c.Text.Inverse, c.Primary},
		{"text.primary on background", c.Text.Primary, c.Background},
		{"text.primary on surface", c.Text.Primary, c.Surface},
		{"text.secondary on background", c.Text.Secondary, c.Background},
	}
	out := make([]ContrastCheck, 0, len(pairs))
	for _, p := range pairs {
		r, err := ContrastRatio(p.fg, p.bg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
		out = append(out, ContrastCheck{
			Name:       p.name,
			Foreground: p.fg,
			Background: p.bg,
			Ratio:      math.Round(r*100) / 100,
			AA:         r >= ContrastAA,
			AAA:        r >= ContrastAAA,
		})
	}
	return out, nil
}
