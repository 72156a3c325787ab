package components

import (
	"fmt"

	"nathanbeddoewebdev/hirectl/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// sparkHeight is the fixed height of trend sparklines.
const sparkHeight = 3

// Sparkline renders a labelled trend line with a cur/min/max summary.
func Sparkline(s *styles.Styles, label string, data []float64, width int) string {
	if len(data) == 0 {
		return s.MutedText.Render(label + ": no data")
	}

	w := max(width, 10)
	sl := sparkline.New(w, sparkHeight,
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(s.Palette.Accent)),
	)
	sl.PushAll(data)
	sl.DrawBraille()

	lo, hi := minMax(data)
	summary := s.MutedText.Render(fmt.Sprintf("  cur: %s  min: %s  max: %s",
		formatValue(data[len(data)-1]), formatValue(lo), formatValue(hi)))

	return lipgloss.JoinVertical(lipgloss.Left, s.Label.Render(label), sl.View(), summary)
}

func minMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// formatValue renders whole counts with separators and keeps one decimal
// for fractional values.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return humanize.Comma(int64(v))
	}
	return humanize.CommafWithDigits(v, 1)
}
