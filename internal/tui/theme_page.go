package tui

import (
	"fmt"

	"nathanbeddoewebdev/hirectl/internal/theme"
	"nathanbeddoewebdev/hirectl/internal/tui/components"
	"nathanbeddoewebdev/hirectl/internal/tui/selectlist"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// themePage edits the variant, mode and colour scheme with one select
// per axis. Changes apply immediately.
type themePage struct {
	env     *env
	back    string
	selects []selectlist.Model
	focus   int
}

func newThemePage(e *env, back string) *themePage {
	p := &themePage{env: e, back: back}
	prov := e.provider

	variants := make([]selectlist.Option, 0, len(theme.Variants()))
	for _, v := range theme.Variants() {
		variants = append(variants, selectlist.Option{Value: v, Label: string(v)})
	}
	modes := make([]selectlist.Option, 0, len(theme.Modes()))
	for _, m := range theme.Modes() {
		modes = append(modes, selectlist.Option{Value: m, Label: string(m)})
	}
	schemes := make([]selectlist.Option, 0, len(theme.ColorSchemes()))
	for _, s := range theme.ColorSchemes() {
		schemes = append(schemes, selectlist.Option{Value: s, Label: string(s)})
	}

	p.selects = []selectlist.Model{
		p.newSelect("theme-variant", variants, prov.Variant(), func(v any) {
			if x, ok := v.(theme.Variant); ok {
				prov.SwitchVariant(x)
			}
		}),
		p.newSelect("theme-mode", modes, prov.Mode(), func(v any) {
			if x, ok := v.(theme.Mode); ok {
				prov.SwitchMode(x)
			}
		}),
		p.newSelect("theme-scheme", schemes, prov.ColorScheme(), func(v any) {
			if x, ok := v.(theme.ColorScheme); ok {
				prov.SwitchColorScheme(x)
			}
		}),
	}
	p.selects[0].Focus()
	return p
}

func (p *themePage) newSelect(id string, opts []selectlist.Option, current any, onChange func(any)) selectlist.Model {
	cfg := selectlist.DefaultConfig()
	cfg.Size = selectlist.SizeSmall
	cfg.Variant = selectlist.VariantOutlined
	cfg.Width = 32
	cfg.OnChange = onChange
	m := selectlist.New(id, opts, cfg, p.env.styles, p.env.zones)
	m.SetValue(current)
	return m
}

func (p *themePage) Init() tea.Cmd { return nil }

func (p *themePage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case themeChangedMsg:
		prov := p.env.provider
		current := []any{prov.Variant(), prov.Mode(), prov.ColorScheme()}
		for i := range p.selects {
			p.selects[i].SetStyles(p.env.styles)
			p.selects[i].SetValue(current[i])
		}
		return p, nil
	case tea.KeyMsg:
		if !p.anyOpen() {
			switch msg.String() {
			case "esc":
				return p, navigate(p.back)
			case "tab", "down", "j":
				p.moveFocus(1)
				return p, nil
			case "shift+tab", "up", "k":
				p.moveFocus(-1)
				return p, nil
			}
		}
		var cmd tea.Cmd
		p.selects[p.focus], cmd = p.selects[p.focus].Update(msg)
		return p, cmd
	case tea.MouseMsg:
		var cmds []tea.Cmd
		for i := range p.selects {
			var cmd tea.Cmd
			p.selects[i], cmd = p.selects[i].Update(msg)
			cmds = append(cmds, cmd)
			if p.selects[i].Focused() {
				p.focus = i
			}
		}
		return p, tea.Batch(cmds...)
	}
	return p, nil
}

func (p *themePage) moveFocus(delta int) {
	p.selects[p.focus].Blur()
	p.focus = (p.focus + delta + len(p.selects)) % len(p.selects)
	p.selects[p.focus].Focus()
}

func (p *themePage) anyOpen() bool {
	for _, s := range p.selects {
		if s.IsOpen() {
			return true
		}
	}
	return false
}

func (p *themePage) Title() string { return "settings / theme" }

func (p *themePage) Bindings() []components.KeyBinding {
	return []components.KeyBinding{
		{Key: "tab", Desc: "next"},
		{Key: "enter", Desc: "open"},
		{Key: "esc", Desc: "back"},
	}
}

func (p *themePage) CapturesInput() bool { return p.anyOpen() }

func (p *themePage) View(width, height int) string {
	s := p.env.styles
	labels := []string{"Variant", "Mode", "Colour scheme"}

	var rows []string
	for i, sel := range p.selects {
		rows = append(rows, s.Label.Render(labels[i]), sel.View(), "")
	}

	t := p.env.provider.Theme()
	rows = append(rows, p.swatches(), "", p.auditView(t))

	return lipgloss.NewStyle().Padding(1, 2).MaxHeight(height).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p *themePage) swatches() string {
	pal := p.env.styles.Palette
	colours := []lipgloss.Color{pal.Accent, pal.AccentAlt, pal.Success, pal.Warning, pal.Error, pal.Info}
	out := ""
	for _, c := range colours {
		out += lipgloss.NewStyle().Background(c).Render("    ") + " "
	}
	return out
}

func (p *themePage) auditView(t theme.ResolvedTheme) string {
	s := p.env.styles
	checks, err := theme.Audit(t)
	if err != nil {
		return s.ErrorText.Render(err.Error())
	}
	lines := []string{s.Subtitle.Render("Contrast")}
	for _, c := range checks {
		grade := s.ErrorText.Render("fail")
		switch {
		case c.AAA:
			grade = s.SuccessText.Render("AAA")
		case c.AA:
			grade = s.SuccessText.Render("AA")
		}
		lines = append(lines, fmt.Sprintf("%-30s %5.2f  %s", c.Name, c.Ratio, grade))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
