package styles

import (
	"nathanbeddoewebdev/hirectl/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the full style set for one theme.
type Styles struct {
	Theme   theme.ResolvedTheme
	Palette Palette

	// --- Typography ---
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style

	// --- Layout ---
	Card       lipgloss.Style
	CardActive lipgloss.Style

	// --- Key hints ---
	KeyStyle     lipgloss.Style
	KeyDescStyle lipgloss.Style
	KeySepStyle  lipgloss.Style

	// --- Tables and lists ---
	TableHeader      lipgloss.Style
	TableCell        lipgloss.Style
	TableSelectedRow lipgloss.Style
	Disabled         lipgloss.Style
	GroupHeader      lipgloss.Style

	// --- Inputs ---
	InputFocused lipgloss.Style
	InputBlurred lipgloss.Style
}

// Border is the default border shape.
var Border = lipgloss.RoundedBorder()

// New builds the style set for t. High-contrast themes get bold text and
// thick borders so focus stays visible without colour.
func New(t theme.ResolvedTheme) *Styles {
	p := PaletteFrom(t)
	hc := t.Scheme == theme.SchemeHighContrast
	border := Border
	if hc {
		border = lipgloss.ThickBorder()
	}

	s := &Styles{Theme: t, Palette: p}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	s.Subtitle = lipgloss.NewStyle().Foreground(p.Subtle)
	s.Label = lipgloss.NewStyle().Foreground(p.Subtle).Bold(true)
	s.Value = lipgloss.NewStyle().Foreground(p.Text)
	s.MutedText = lipgloss.NewStyle().Foreground(p.Muted)
	s.AccentText = lipgloss.NewStyle().Foreground(p.Accent).Bold(hc)
	s.ErrorText = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	s.SuccessText = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	s.WarningText = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)

	s.Card = lipgloss.NewStyle().Border(border).BorderForeground(p.Border).Padding(1, 2)
	s.CardActive = lipgloss.NewStyle().Border(border).BorderForeground(p.Accent).Padding(1, 2)

	s.KeyStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	s.KeyDescStyle = lipgloss.NewStyle().Foreground(p.Muted)
	s.KeySepStyle = lipgloss.NewStyle().Foreground(p.Border)

	s.TableHeader = lipgloss.NewStyle().Bold(true).Foreground(p.Subtle).Padding(0, 1)
	s.TableCell = lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1)
	s.TableSelectedRow = lipgloss.NewStyle().
		Foreground(p.Inverse).
		Background(p.Accent).
		Bold(true).
		Padding(0, 1)
	s.Disabled = lipgloss.NewStyle().Foreground(p.Disabled).Strikethrough(hc)
	s.GroupHeader = lipgloss.NewStyle().Foreground(p.AccentAlt).Bold(true)

	s.InputFocused = lipgloss.NewStyle().Border(border).BorderForeground(p.Focus).Padding(0, 1)
	s.InputBlurred = lipgloss.NewStyle().Border(border).BorderForeground(p.Border).Padding(0, 1)

	return s
}

// StatusStyle returns the style for a job or application status value.
func (s *Styles) StatusStyle(status string) lipgloss.Style {
	switch status {
	case "open", "accepted", "hired", "completed":
		return lipgloss.NewStyle().Foreground(s.Palette.Success).Bold(true)
	case "paused", "pending", "reviewing", "interview":
		return lipgloss.NewStyle().Foreground(s.Palette.Warning).Bold(true)
	case "closed", "rejected", "withdrawn":
		return lipgloss.NewStyle().Foreground(s.Palette.Error)
	case "draft":
		return lipgloss.NewStyle().Foreground(s.Palette.Info)
	default:
		return lipgloss.NewStyle().Foreground(s.Palette.Muted)
	}
}

// StatusIndicator returns a small dot + status text with appropriate color.
func (s *Styles) StatusIndicator(status string) string {
	style := s.StatusStyle(status)
	return style.Render("●") + " " + style.Render(status)
}

// FormatKeyBinding formats a single key binding for the footer.
func (s *Styles) FormatKeyBinding(key, desc string) string {
	return s.KeyStyle.Render(key) + " " + s.KeyDescStyle.Render(desc)
}

// AppFrame returns the full-window frame style.
func AppFrame(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(height)
}

// CenterText centers text horizontally within the given width.
func CenterText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}
