// Package styles builds the lipgloss styles for the hirectl TUI from a
// resolved brand theme. Views never hard-code colours; they hold a
// *Styles and rebuild it when the theme changes.
package styles

import (
	"nathanbeddoewebdev/hirectl/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the subset of theme colours the TUI draws with.
type Palette struct {
	Text      lipgloss.Color
	Subtle    lipgloss.Color
	Muted     lipgloss.Color
	Disabled  lipgloss.Color
	Inverse   lipgloss.Color
	Border    lipgloss.Color
	Accent    lipgloss.Color
	AccentAlt lipgloss.Color
	Highlight lipgloss.Color
	Focus     lipgloss.Color
	Surface   lipgloss.Color
	Canvas    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// PaletteFrom maps theme colour slots onto terminal colours. Values that
// are not hex (rgba shadows, gradients) are never used here.
func PaletteFrom(t theme.ResolvedTheme) Palette {
	c := t.Colors
	alt := c.Secondary
	if c.Tertiary != "" {
		alt = c.Tertiary
	}
	return Palette{
		Text:      lipgloss.Color(c.Text.Primary),
		Subtle:    lipgloss.Color(c.Text.Secondary),
		Muted:     lipgloss.Color(c.Text.Tertiary),
		Disabled:  lipgloss.Color(c.Text.Disabled),
		Inverse:   lipgloss.Color(c.Text.Inverse),
		Border:    lipgloss.Color(c.Border),
		Accent:    lipgloss.Color(c.Primary),
		AccentAlt: lipgloss.Color(alt),
		Highlight: lipgloss.Color(c.Interactive.Active),
		Focus:     lipgloss.Color(c.Interactive.Focus),
		Surface:   lipgloss.Color(c.Surface),
		Canvas:    lipgloss.Color(c.Background),
		Success:   lipgloss.Color(c.Status.Success),
		Warning:   lipgloss.Color(c.Status.Warning),
		Error:     lipgloss.Color(c.Status.Error),
		Info:      lipgloss.Color(c.Status.Info),
	}
}
