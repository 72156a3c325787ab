package tui

import (
	"fmt"
	"slices"
	"strings"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/state"
	"nathanbeddoewebdev/hirectl/internal/tui/components"
	"nathanbeddoewebdev/hirectl/internal/tui/selectlist"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const matchLimit = 20

// talentPage is the talent dashboard: job matches, credits and the
// latest notifications.
type talentPage struct {
	env      *env
	matches  selectlist.Model
	matchIDs []string
}

func newTalentPage(e *env) *talentPage {
	p := &talentPage{env: e}
	p.matches = p.buildList(nil)
	p.matches.Focus()
	return p
}

func (p *talentPage) buildList(matches []domain.Match) selectlist.Model {
	opts := make([]selectlist.Option, 0, len(matches))
	for _, m := range matches {
		opts = append(opts, selectlist.Option{
			Value:       m.Job.ID,
			Label:       m.Job.Title,
			Description: fmt.Sprintf("%s · %d%%", m.Job.CompanyName, m.Score),
			Group:       matchBand(m.Score),
		})
	}
	cfg := selectlist.DefaultConfig()
	cfg.Searchable = true
	cfg.Grouping = true
	cfg.Size = selectlist.SizeLarge
	cfg.Variant = selectlist.VariantOutlined
	cfg.Placeholder = "Pick a match…"
	cfg.Width = 56
	return selectlist.New("talent-matches", opts, cfg, p.env.styles, p.env.zones)
}

// matchBand groups matches by score.
func matchBand(score int) string {
	switch {
	case score >= 80:
		return "Strong matches"
	case score >= 60:
		return "Good matches"
	}
	return ""
}

func (p *talentPage) Init() tea.Cmd { return p.refresh() }

func (p *talentPage) refresh() tea.Cmd {
	e := p.env
	return tea.Batch(
		func() tea.Msg {
			return loaded("Dashboard", e.store.LoadDashboard(e.ctx, domain.RoleTalent))
		},
		func() tea.Msg {
			return loaded("Matches", e.store.Jobs.LoadMatches(e.ctx, matchLimit))
		},
	)
}

func (p *talentPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		if msg.ev.Slice == state.SliceJobs {
			p.syncMatches()
		}
		return p, nil
	case themeChangedMsg:
		p.matches.SetStyles(p.env.styles)
		return p, nil
	case tea.KeyMsg:
		if !p.matches.IsOpen() {
			switch msg.String() {
			case "a":
				return p, p.apply()
			case "r":
				return p, p.refresh()
			}
		}
	}

	var cmd tea.Cmd
	p.matches, cmd = p.matches.Update(msg)
	return p, cmd
}

// syncMatches rebuilds the list when the match set changed, keeping the
// current selection.
func (p *talentPage) syncMatches() {
	matches := p.env.store.Jobs.Snapshot().Data.Matches
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.Job.ID
	}
	if slices.Equal(ids, p.matchIDs) {
		return
	}
	selected := p.matches.Value()
	focused := p.matches.Focused()
	p.matchIDs = ids
	p.matches = p.buildList(matches)
	if selected != nil {
		p.matches.SetValue(selected)
	}
	if focused {
		p.matches.Focus()
	}
}

func (p *talentPage) apply() tea.Cmd {
	id, _ := p.matches.Value().(string)
	if id == "" {
		return func() tea.Msg { return opDoneMsg{label: "Apply", err: fmt.Errorf("pick a match first")} }
	}
	e := p.env
	return func() tea.Msg {
		if err := e.store.Jobs.Apply(e.ctx, id, ""); err != nil {
			return opDoneMsg{label: "Apply failed", err: err}
		}
		return opDoneMsg{label: "Application sent"}
	}
}

func (p *talentPage) Title() string { return "talent" }

func (p *talentPage) Bindings() []components.KeyBinding {
	if p.matches.IsOpen() {
		return []components.KeyBinding{
			{Key: "↑/↓", Desc: "move"},
			{Key: "enter", Desc: "choose"},
			{Key: "esc", Desc: "close"},
		}
	}
	return []components.KeyBinding{
		{Key: "enter", Desc: "matches"},
		{Key: "a", Desc: "apply"},
		{Key: "r", Desc: "refresh"},
	}
}

func (p *talentPage) CapturesInput() bool { return p.matches.IsOpen() }

func (p *talentPage) View(width, height int) string {
	s := p.env.styles
	st := p.env.store

	left := []string{s.Subtitle.Render("Matches"), p.matches.View()}
	if m, ok := p.selectedMatch(); ok {
		left = append(left, "", p.matchDetail(m))
	}

	right := []string{p.creditsView()}
	if sum := st.Analytics.Snapshot().Data.Summary; sum != nil {
		right = append(right, "",
			s.Label.Render("Applications: ")+s.Value.Render(humanize.Comma(int64(sum.Applications))),
			s.Label.Render("Profile views: ")+s.Value.Render(humanize.Comma(int64(sum.ProfileViews))),
		)
	}
	right = append(right, "", p.notificationsView(max(width/3, 24)))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		"    ",
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)
	return lipgloss.NewStyle().Padding(1, 2).MaxHeight(height).Render(body)
}

func (p *talentPage) selectedMatch() (domain.Match, bool) {
	id, _ := p.matches.Value().(string)
	for _, m := range p.env.store.Jobs.Snapshot().Data.Matches {
		if m.Job.ID == id {
			return m, true
		}
	}
	return domain.Match{}, false
}

func (p *talentPage) matchDetail(m domain.Match) string {
	s := p.env.styles
	lines := []string{
		s.Title.Render(m.Job.Title),
		s.MutedText.Render(m.Job.CompanyName + " · " + m.Job.Location),
		s.Label.Render("Score: ") + s.AccentText.Render(fmt.Sprintf("%d%%", m.Score)),
	}
	if len(m.MissingSkills) > 0 {
		lines = append(lines, s.Label.Render("Missing: ")+s.WarningText.Render(strings.Join(m.MissingSkills, ", ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p *talentPage) creditsView() string {
	s := p.env.styles
	snap := p.env.store.Credits.Snapshot()
	switch {
	case snap.Data.Balance != nil:
		return s.Label.Render("Credits: ") + s.Value.Render(humanize.Comma(int64(snap.Data.Balance.Balance)))
	case snap.Error != "":
		return s.ErrorText.Render("Credits unavailable")
	}
	return s.MutedText.Render("Credits: …")
}

func (p *talentPage) notificationsView(width int) string {
	s := p.env.styles
	snap := p.env.store.Notifications.Snapshot()
	lines := []string{s.Subtitle.Render(fmt.Sprintf("Notifications (%d unread)", snap.Data.Unread))}
	if len(snap.Data.Items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.MutedText.Render("Nothing new"))...)
	}
	for _, n := range snap.Data.Items[:min(len(snap.Data.Items), 5)] {
		dot := "  "
		if !n.Read {
			dot = s.AccentText.Render("● ")
		}
		title := lipgloss.NewStyle().MaxWidth(width).Render(n.Title)
		lines = append(lines, dot+s.Value.Render(title)+" "+s.MutedText.Render(humanize.Time(n.CreatedAt)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
