package tui

import (
	"errors"
	"strings"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/guard"
	"nathanbeddoewebdev/hirectl/internal/tui/components"
	"nathanbeddoewebdev/hirectl/internal/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// loginDoneMsg ends a sign-in or registration attempt.
type loginDoneMsg struct {
	err error
}

// loginFields backs the huh form. It lives behind a pointer so the
// form's Value bindings survive page copies.
type loginFields struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      string
	company   string
}

// loginPage signs in or registers through a huh form.
type loginPage struct {
	env      *env
	register bool
	fields   *loginFields
	form     *huh.Form
	busy     bool
	err      error
}

func newLoginPage(e *env, register bool) *loginPage {
	p := &loginPage{env: e, register: register, fields: &loginFields{role: string(domain.RoleTalent)}}
	p.form = p.buildForm()
	return p
}

func (p *loginPage) buildForm() *huh.Form {
	f := p.fields
	fields := []huh.Field{
		huh.NewInput().
			Title("Email").
			Value(&f.email).
			Validate(util.ValidateEmail),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&f.password).
			Validate(func(s string) error {
				if p.register {
					return util.ValidatePassword(s)
				}
				if strings.TrimSpace(s) == "" {
					return errors.New("password cannot be empty")
				}
				return nil
			}),
	}

	groups := []*huh.Group{huh.NewGroup(fields...)}
	if p.register {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title("First name").Value(&f.firstName),
			huh.NewInput().Title("Last name").Value(&f.lastName),
			huh.NewSelect[string]().
				Title("I am").
				Options(
					huh.NewOption("Looking for work", string(domain.RoleTalent)),
					huh.NewOption("Hiring for a team", string(domain.RoleEmployer)),
				).
				Value(&f.role),
			huh.NewInput().
				Title("Company").
				Description("Teams only").
				Value(&f.company),
		))
	}
	return huh.NewForm(groups...).WithShowHelp(false).WithWidth(48)
}

func (p *loginPage) Init() tea.Cmd { return p.form.Init() }

func (p *loginPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.err = msg.err
			p.fields.password = ""
			p.form = p.buildForm()
			return p, p.form.Init()
		}
		return p, nil
	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		if msg.String() == "ctrl+r" {
			if p.register {
				return p, navigate(guard.RouteLogin)
			}
			return p, navigate(guard.RouteRegister)
		}
	}

	model, cmd := p.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		p.form = f
	}
	if p.form.State == huh.StateCompleted && !p.busy {
		p.busy = true
		p.err = nil
		return p, tea.Batch(cmd, p.submit())
	}
	return p, cmd
}

func (p *loginPage) submit() tea.Cmd {
	e := p.env
	f := *p.fields
	register := p.register
	return func() tea.Msg {
		var err error
		if register {
			err = e.store.Auth.Register(e.ctx, domain.Registration{
				Email:     strings.TrimSpace(f.email),
				Password:  f.password,
				FirstName: strings.TrimSpace(f.firstName),
				LastName:  strings.TrimSpace(f.lastName),
				Role:      domain.Role(f.role),
				Company:   strings.TrimSpace(f.company),
			})
		} else {
			err = e.store.Auth.Login(e.ctx, domain.Credentials{
				Email:    strings.TrimSpace(f.email),
				Password: f.password,
			})
		}
		if err == nil {
			err = loadOnboarding(e)
		}
		return loginDoneMsg{err: err}
	}
}

func (p *loginPage) Title() string {
	if p.register {
		return "register"
	}
	return "sign in"
}

func (p *loginPage) Bindings() []components.KeyBinding {
	other := "register"
	if p.register {
		other = "sign in"
	}
	return []components.KeyBinding{
		{Key: "enter", Desc: "next"},
		{Key: "ctrl+r", Desc: other},
		{Key: "ctrl+c", Desc: "quit"},
	}
}

func (p *loginPage) CapturesInput() bool { return true }

func (p *loginPage) View(width, height int) string {
	s := p.env.styles
	heading := "Sign in to hirectl"
	if p.register {
		heading = "Create your account"
	}

	body := p.form.View()
	if p.busy {
		body = s.MutedText.Render("Contacting server…")
	}

	var errLine string
	if p.err != nil {
		errLine = s.ErrorText.Render(friendlyAuthError(p.err))
	}

	card := s.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(heading),
		"",
		body,
		errLine,
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func friendlyAuthError(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "Email or password is incorrect."
	case errors.Is(err, domain.ErrConflict):
		return "An account with this email already exists."
	}
	return err.Error()
}
