// Package components provides reusable Bubbletea UI building blocks for
// the hirectl TUI. These are render-only helpers (not tea.Model) used by
// the page models to compose views.
package components

import (
	"strings"

	"nathanbeddoewebdev/hirectl/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar.
//
//	┌──────────────────────────────────────────┐
//	│  hirectl > dashboard        talent · dark│
//	└──────────────────────────────────────────┘
func Header(s *styles.Styles, width int, breadcrumb string, right string) string {
	if width < 10 {
		return ""
	}

	left := s.Title.Foreground(s.Palette.Accent).Render("hirectl")
	if breadcrumb != "" {
		left += s.MutedText.Render(" > ") + s.Title.Render(breadcrumb)
	}

	if right != "" {
		right = s.Subtitle.Render(right)
	}

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	innerWidth := width - 4 // account for padding
	gap := max(innerWidth-leftLen-rightLen, 1)

	content := left + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(s.Palette.Border).
		Render(content)
}
