package selectlist

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) optionZone(pos int) string {
	return m.id + "/" + strconv.Itoa(pos)
}

func (m Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

// View renders the trigger and, while open, the filter and option list.
func (m Model) View() string {
	if m.styles == nil {
		return ""
	}
	parts := []string{m.triggerView()}
	if m.open {
		if m.cfg.Searchable {
			parts = append(parts, m.truncate(m.filter.View()))
		}
		parts = append(parts, m.listView())
	}
	return m.mark(m.id, lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) triggerView() string {
	s := m.styles
	label := m.summary()
	text := s.Value.Render(label)
	if label == "" {
		text = s.MutedText.Render(m.cfg.Placeholder)
	}
	if m.cfg.Disabled {
		text = s.Disabled.Render(ansi.Strip(text))
	}

	arrow := "▾"
	if m.open {
		arrow = "▴"
	}
	inner := m.cfg.Width - 4
	body := ansi.Truncate(text, inner-2, "…")
	gap := max(inner-lipgloss.Width(body)-1, 1)
	line := body + strings.Repeat(" ", gap) + s.MutedText.Render(arrow)

	frame := lipgloss.NewStyle().Padding(0, 1)
	switch m.cfg.Variant {
	case VariantOutlined:
		border := s.InputBlurred
		if m.focused {
			border = s.InputFocused
		}
		frame = border
	case VariantFilled:
		frame = frame.Background(s.Palette.Surface)
		if m.focused {
			frame = frame.Underline(true)
		}
	default:
		if m.focused {
			frame = frame.Foreground(s.Palette.Focus)
		}
	}
	return frame.Render(line)
}

// summary is the trigger text: the selected label(s), or "" when empty.
func (m Model) summary() string {
	if m.cfg.Multiple {
		if len(m.multi) == 0 {
			return ""
		}
		labels := make([]string, 0, len(m.multi))
		for _, v := range m.multi {
			labels = append(labels, m.labelFor(v))
		}
		return strings.Join(labels, ", ")
	}
	if m.single == nil {
		return ""
	}
	return m.labelFor(m.single)
}

func (m Model) labelFor(v any) string {
	for _, o := range m.options {
		if equal(o.Value, v) {
			return o.Label
		}
	}
	return ""
}

func (m Model) listView() string {
	s := m.styles
	if len(m.visible) == 0 {
		return s.MutedText.Render("  No matches")
	}

	rows := m.cfg.Size.rows()
	end := min(m.offset+rows, len(m.visible))

	var lines []string
	for pos := m.offset; pos < end; pos++ {
		if h, ok := m.headers[pos]; ok {
			lines = append(lines, m.truncate(s.GroupHeader.Render(h)))
		}
		opt := m.options[m.visible[pos]]
		state := ItemState{Focused: pos == m.cursor, Selected: m.isSelected(opt.Value)}
		lines = append(lines, m.mark(m.optionZone(pos), m.truncate(m.renderOption(opt, state))))
	}
	if len(m.visible) > rows {
		lines = append(lines, s.MutedText.Render("  "+strconv.Itoa(end)+"/"+strconv.Itoa(len(m.visible))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderOption(opt Option, state ItemState) string {
	if m.cfg.Renderer != nil {
		return m.cfg.Renderer(opt, state, m.styles)
	}
	s := m.styles

	cursor := "  "
	if state.Focused {
		cursor = s.AccentText.Render("> ")
	}

	mark := ""
	switch {
	case m.cfg.Multiple && state.Selected:
		mark = "[x] "
	case m.cfg.Multiple:
		mark = "[ ] "
	case state.Selected:
		mark = "● "
	}

	label := opt.Label
	if opt.Icon != "" {
		label = opt.Icon + " " + label
	}

	var line string
	switch {
	case opt.Disabled:
		line = s.Disabled.Render(mark + label)
	case state.Focused:
		line = s.AccentText.Render(mark + label)
	case state.Selected:
		line = s.Value.Bold(true).Render(mark + label)
	default:
		line = s.Value.Render(mark + label)
	}
	if opt.Description != "" {
		line += " " + s.MutedText.Render(opt.Description)
	}
	return cursor + line
}

func (m Model) truncate(s string) string {
	return ansi.Truncate(s, m.cfg.Width, "…")
}
