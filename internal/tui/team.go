package tui

import (
	"fmt"
	"strconv"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/tui/components"
	"nathanbeddoewebdev/hirectl/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// teamPage is the employer dashboard: summary metrics, the application
// trend and the employer's postings.
type teamPage struct {
	env     *env
	cursor  int
	confirm string
}

func newTeamPage(e *env) *teamPage { return &teamPage{env: e} }

func (p *teamPage) Init() tea.Cmd { return p.refresh() }

func (p *teamPage) refresh() tea.Cmd {
	e := p.env
	return tea.Batch(
		func() tea.Msg {
			return loaded("Dashboard", e.store.LoadDashboard(e.ctx, domain.RoleEmployer))
		},
		func() tea.Msg {
			return loaded("Postings", e.store.Jobs.LoadMine(e.ctx))
		},
	)
}

func (p *teamPage) Update(msg tea.Msg) (page, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	jobs := p.env.store.Jobs.Snapshot().Data.Mine

	if p.confirm != "" {
		id := p.confirm
		p.confirm = ""
		if key.String() == "y" {
			return p, p.delete(id)
		}
		return p, nil
	}

	switch key.String() {
	case "r":
		return p, p.refresh()
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(jobs)-1 {
			p.cursor++
		}
	case "d":
		if p.cursor < len(jobs) {
			p.confirm = jobs[p.cursor].ID
		}
	}
	return p, nil
}

func (p *teamPage) delete(id string) tea.Cmd {
	e := p.env
	return func() tea.Msg {
		if err := e.store.Jobs.Delete(e.ctx, id); err != nil {
			return opDoneMsg{label: "Delete failed", err: err}
		}
		return opDoneMsg{label: "Posting deleted"}
	}
}

func (p *teamPage) Title() string { return "team" }

func (p *teamPage) Bindings() []components.KeyBinding {
	return []components.KeyBinding{
		{Key: "↑/↓", Desc: "select"},
		{Key: "d", Desc: "delete"},
		{Key: "r", Desc: "refresh"},
	}
}

func (p *teamPage) CapturesInput() bool { return p.confirm != "" }

func (p *teamPage) View(width, height int) string {
	s := p.env.styles
	st := p.env.store

	summary := st.Analytics.Snapshot()
	jobs := st.Jobs.Snapshot()

	var metrics string
	trend := s.MutedText.Render("Loading…")
	if sum := summary.Data.Summary; sum != nil {
		metrics = lipgloss.JoinHorizontal(lipgloss.Top,
			metric(s, "Active jobs", sum.ActiveJobs),
			metric(s, "Applicants", sum.TotalApplicants),
			metric(s, "Interviews", sum.Interviews),
			metric(s, "Unread", sum.UnreadNotices),
		)
		trend = components.Sparkline(s, "Applications", sum.ApplicationsTrend, max(width-8, 10))
		if at := summary.Data.CachedAt; !at.IsZero() {
			trend = lipgloss.JoinVertical(lipgloss.Left, trend, s.MutedText.Render("cached "+humanize.Time(at)+", refreshing…"))
		}
	} else if summary.Error != "" {
		trend = s.ErrorText.Render(summary.Error)
	}

	table := p.renderTable(jobs.Data.Mine, width, max(height-12, 4))
	if jobs.Loading && len(jobs.Data.Mine) == 0 {
		table = s.MutedText.Render("Loading postings…")
	}

	parts := []string{metrics, "", trend, "", s.Subtitle.Render("Postings"), table}
	if p.confirm != "" {
		parts = append(parts, "", s.WarningText.Render("Delete this posting? y to confirm"))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (p *teamPage) renderTable(jobs []domain.Job, width, height int) string {
	s := p.env.styles
	if len(jobs) == 0 {
		return s.MutedText.Render("No postings yet. Create one with `hirectl jobs create`.")
	}

	cols := []int{32, 10, 10, 16}
	header := s.TableHeader.Render(fmt.Sprintf("  %-*s %-*s %-*s %-*s",
		cols[0], "TITLE",
		cols[1], "STATUS",
		cols[2], "APPLICANTS",
		cols[3], "POSTED",
	))
	rows := []string{header}

	start := 0
	if p.cursor >= height-2 {
		start = p.cursor - (height - 3)
	}
	end := min(start+height-2, len(jobs))

	for i := start; i < end; i++ {
		j := jobs[i]
		cursor := " "
		rowStyle := s.TableCell
		if i == p.cursor {
			cursor = s.AccentText.Render(">")
			rowStyle = s.TableSelectedRow
		}
		status := s.StatusIndicator(string(j.Status))
		pad := max(cols[1]-lipgloss.Width(status), 0)
		line := fmt.Sprintf("%-*s %s%*s %-*s %-*s",
			cols[0], ansi.Truncate(j.Title, cols[0], "…"),
			status, pad, "",
			cols[2], strconv.Itoa(j.Applicants),
			cols[3], humanize.Time(j.CreatedAt),
		)
		rows = append(rows, cursor+" "+rowStyle.Render(ansi.Truncate(line, max(width-8, 20), "…")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func metric(s *styles.Styles, label string, v int) string {
	return s.Card.Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Label.Render(label),
		s.Title.Render(humanize.Comma(int64(v))),
	))
}
