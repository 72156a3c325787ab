package tui

import (
	"nathanbeddoewebdev/hirectl/internal/tui/components"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// splashPage shows while the stored session is restored.
type splashPage struct {
	env     *env
	spinner spinner.Model
}

func newSplashPage(e *env) *splashPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(e.styles.Palette.Accent)
	return &splashPage{env: e, spinner: sp}
}

func (p *splashPage) Init() tea.Cmd { return p.spinner.Tick }

func (p *splashPage) Update(msg tea.Msg) (page, tea.Cmd) {
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return p, cmd
}

func (p *splashPage) View(width, height int) string {
	s := p.env.styles
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		p.spinner.View()+" "+s.MutedText.Render("Restoring session…"))
}

func (p *splashPage) Title() string                     { return "" }
func (p *splashPage) Bindings() []components.KeyBinding { return nil }
func (p *splashPage) CapturesInput() bool               { return false }

// homePage is shown to a signed-in user whose role has no dashboard.
type homePage struct {
	env *env
}

func newHomePage(e *env) *homePage { return &homePage{env: e} }

func (p *homePage) Init() tea.Cmd                      { return nil }
func (p *homePage) Update(msg tea.Msg) (page, tea.Cmd) { return p, nil }
func (p *homePage) Title() string                      { return "home" }
func (p *homePage) Bindings() []components.KeyBinding {
	return []components.KeyBinding{{Key: "ctrl+l", Desc: "sign out"}}
}
func (p *homePage) CapturesInput() bool { return false }

func (p *homePage) View(width, height int) string {
	s := p.env.styles
	card := s.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Welcome to hirectl"),
		s.MutedText.Render("Your account has no dashboard yet."),
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
