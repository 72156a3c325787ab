package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/guard"
	"nathanbeddoewebdev/hirectl/internal/tui/components"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	cvParsePolls    = 10
	cvParseInterval = 2 * time.Second
)

// cvImportedMsg ends the upload → parse → confirm chain.
type cvImportedMsg struct {
	err error
}

// onboardingPage asks a new talent user for a CV and imports it into the
// profile.
type onboardingPage struct {
	env   *env
	input textinput.Model
	busy  bool
	step  string
	err   error
}

func newOnboardingPage(e *env) *onboardingPage {
	ti := textinput.New()
	ti.Placeholder = "~/Documents/cv.pdf"
	ti.Prompt = "CV file: "
	ti.Width = 48
	ti.Focus()
	return &onboardingPage{env: e, input: ti}
}

func (p *onboardingPage) Init() tea.Cmd { return textinput.Blink }

func (p *onboardingPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case cvImportedMsg:
		p.busy = false
		if msg.err != nil {
			p.err = msg.err
			return p, nil
		}
		return p, navigate(guard.RouteTalent)
	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		if msg.String() == "enter" {
			path := strings.TrimSpace(p.input.Value())
			if path == "" {
				p.err = fmt.Errorf("enter the path to your CV")
				return p, nil
			}
			p.busy = true
			p.err = nil
			return p, p.importCV(path)
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// importCV uploads the file, waits for the parser and confirms the
// result into the profile.
func (p *onboardingPage) importCV(path string) tea.Cmd {
	e := p.env
	return func() tea.Msg {
		path = expandHome(path)
		f, err := os.Open(path)
		if err != nil {
			return cvImportedMsg{err: fmt.Errorf("open CV: %w", err)}
		}
		defer f.Close()

		user := e.store.User
		if err := user.UploadCV(e.ctx, filepath.Base(path), f); err != nil {
			return cvImportedMsg{err: err}
		}
		up := user.Snapshot().Data.CVUpload
		if up == nil {
			return cvImportedMsg{err: fmt.Errorf("upload did not return an id")}
		}

		if err := pollParsedCV(e.ctx, func(ctx context.Context) error {
			return user.LoadParsedCV(ctx, up.UploadID)
		}); err != nil {
			return cvImportedMsg{err: err}
		}

		parsed := user.Snapshot().Data.ParsedCV
		if parsed == nil {
			return cvImportedMsg{err: fmt.Errorf("no parse result for %s", up.FileName)}
		}
		if err := user.ConfirmCV(e.ctx, *parsed); err != nil {
			return cvImportedMsg{err: err}
		}
		return cvImportedMsg{err: user.LoadOnboarding(e.ctx)}
	}
}

func (p *onboardingPage) Title() string { return "onboarding" }

func (p *onboardingPage) Bindings() []components.KeyBinding {
	return []components.KeyBinding{
		{Key: "enter", Desc: "import CV"},
		{Key: "ctrl+l", Desc: "sign out"},
	}
}

func (p *onboardingPage) CapturesInput() bool { return true }

func (p *onboardingPage) View(width, height int) string {
	s := p.env.styles
	snap := p.env.store.User.Snapshot()

	lines := []string{
		s.Title.Render("Finish your profile"),
		s.MutedText.Render("Import a CV and we will fill in your profile for you."),
		"",
	}
	if o := snap.Data.Onboarding; o != nil {
		lines = append(lines, s.Label.Render("Progress: ")+s.Value.Render(fmt.Sprintf("%d%%", o.CompletionPercent)))
		if len(o.MissingSteps) > 0 {
			lines = append(lines, s.Label.Render("Missing: ")+s.Value.Render(strings.Join(o.MissingSteps, ", ")))
		}
		lines = append(lines, "")
	}
	if up := snap.Data.CVUpload; up != nil && up.Size > 0 {
		lines = append(lines, s.MutedText.Render(fmt.Sprintf("Uploaded %s (%s)", up.FileName, humanize.Bytes(uint64(up.Size)))))
	}

	lines = append(lines, p.input.View())
	if p.busy {
		lines = append(lines, "", s.MutedText.Render("Importing… this can take a minute."))
	}
	if p.err != nil {
		lines = append(lines, "", s.ErrorText.Render(p.err.Error()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

// pollParsedCV retries load while the parser is still working (404).
func pollParsedCV(ctx context.Context, load func(context.Context) error) error {
	var err error
	for range cvParsePolls {
		if err = load(ctx); err == nil || !isNotReady(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cvParseInterval):
		}
	}
	return fmt.Errorf("CV is still being processed, try again shortly: %w", err)
}

// isNotReady reports whether the parser has not produced a result yet.
func isNotReady(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
