package tui

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/guard"
	themeprefsvc "nathanbeddoewebdev/hirectl/internal/services/themeprefs"
	"nathanbeddoewebdev/hirectl/internal/state"
	"nathanbeddoewebdev/hirectl/internal/theme"
	"nathanbeddoewebdev/hirectl/internal/tui/components"
	"nathanbeddoewebdev/hirectl/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// --- Messages ---

// navigateMsg asks the app to show a route. The guard may redirect it.
type navigateMsg struct {
	to string
}

func navigate(to string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

// stateChangedMsg is forwarded from state.Store subscriptions.
type stateChangedMsg struct {
	ev state.Event
}

// themeChangedMsg is forwarded from theme.Provider subscriptions.
type themeChangedMsg struct {
	theme theme.ResolvedTheme
}

// sessionReadyMsg ends the startup restore.
type sessionReadyMsg struct {
	err error
}

// opDoneMsg reports the end of a page-initiated operation.
type opDoneMsg struct {
	label string
	err   error
}

// --- Pages ---

// env is what every page can reach.
type env struct {
	ctx      context.Context
	store    *state.Store
	provider *theme.Provider
	styles   *styles.Styles
	zones    *zone.Manager
	logger   *zap.Logger
}

// page is one routed screen.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View(width, height int) string
	Title() string
	Bindings() []components.KeyBinding
	// CapturesInput is true while the page owns printable keys, which
	// disables the single-letter app shortcuts.
	CapturesInput() bool
}

// --- App model ---

// Options configures RunApp.
type Options struct {
	Store    *state.Store
	Provider *theme.Provider
	Prefs    *themeprefsvc.Service
	Logger   *zap.Logger
	// Route is the initial route, "/" when empty.
	Route string
	// FixedVariant is set when the brand variant was configured
	// explicitly. Otherwise it follows the signed-in user's role.
	FixedVariant bool
}

// boundary records a recovered panic. It is shared by pointer so View,
// which cannot return a new model, can trip it too.
type boundary struct {
	err   error
	stack string
}

type appModel struct {
	env          *env
	prefs        *themeprefsvc.Service
	fixedVariant bool

	route     string
	requested string
	page      page
	ready     bool

	status  string
	isError bool

	crash *boundary

	width  int
	height int
}

// RunApp starts the interactive TUI and blocks until the user quits.
func RunApp(ctx context.Context, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	zones := zone.New()
	e := &env{
		ctx:      ctx,
		store:    opts.Store,
		provider: opts.Provider,
		styles:   styles.New(opts.Provider.Theme()),
		zones:    zones,
		logger:   log.Named("tui"),
	}

	m := newAppModel(e, opts.Prefs, opts.Route)
	m.fixedVariant = opts.FixedVariant
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	// Subscribers can fire from inside Update, where a blocking Send
	// would deadlock the event loop.
	unsubState := opts.Store.Subscribe(func(ev state.Event) { go p.Send(stateChangedMsg{ev: ev}) })
	defer unsubState()
	unsubTheme := opts.Provider.Subscribe(func(t theme.ResolvedTheme) { go p.Send(themeChangedMsg{theme: t}) })
	defer unsubTheme()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run ui: %w", err)
	}
	opts.Store.Cancel()
	return nil
}

func newAppModel(e *env, prefs *themeprefsvc.Service, route string) appModel {
	if route == "" {
		route = guard.RouteHome
	}
	return appModel{
		env:       e,
		prefs:     prefs,
		requested: guard.Clean(route),
		page:      newSplashPage(e),
		crash:     &boundary{},
	}
}

func (m appModel) Init() tea.Cmd {
	return m.restoreSession()
}

func (m appModel) restoreSession() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		if err := e.store.Auth.Restore(e.ctx); err != nil {
			return sessionReadyMsg{err: err}
		}
		return sessionReadyMsg{err: loadOnboarding(e)}
	}
}

// loadOnboarding fetches the onboarding flag for talent users so the
// guard can decide.
func loadOnboarding(e *env) error {
	if userRole(e.store) != domain.RoleTalent {
		return nil
	}
	return e.store.User.LoadOnboarding(e.ctx)
}

// Update routes messages to the current page behind a panic boundary.
func (m appModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.trip(r)
			model, cmd = m, nil
		}
	}()
	return m.update(msg)
}

func (m *appModel) trip(r any) {
	m.crash.err = fmt.Errorf("%v", r)
	m.crash.stack = string(debug.Stack())
	m.env.logger.Error("recovered panic",
		zap.Error(m.crash.err),
		zap.String("stack", m.crash.stack),
	)
}

func (m appModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
	}

	if m.crash.err != nil {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "r":
				return m.reset()
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, next, cmd := m.handleGlobalKey(msg); handled {
			return next, cmd
		}

	case sessionReadyMsg:
		m.ready = true
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		}
		m.applyUserTheme()
		return m.show(m.requested)

	case navigateMsg:
		return m.show(msg.to)

	case loginDoneMsg:
		if msg.err != nil {
			break
		}
		m.applyUserTheme()
		next := guard.PostLoginRoute(m.session(), m.requested)
		return m.show(next)

	case themeChangedMsg:
		m.env.styles = styles.New(msg.theme)
		m.rememberTheme()

	case stateChangedMsg:
		// A forced logout anywhere sends the user back to sign in.
		if m.ready && msg.ev.Slice == state.SliceAuth && !m.env.store.IsAuthenticated() && !guard.IsPublic(m.route) {
			return m.show(guard.RouteLogin)
		}

	case opDoneMsg:
		if msg.err != nil {
			m.setStatus(msg.label+": "+msg.err.Error(), true)
		} else if msg.label != "" {
			m.setStatus(msg.label, false)
		}
	}

	next, cmd := m.page.Update(msg)
	m.page = next
	return m, cmd
}

func (m appModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return true, m, tea.Quit
	case "ctrl+l":
		if m.env.store.IsAuthenticated() {
			return true, m, logout(m.env)
		}
	}
	if m.page.CapturesInput() {
		return false, m, nil
	}

	p := m.env.provider
	switch msg.String() {
	case "q":
		return true, m, tea.Quit
	case "t":
		p.SwitchVariant(p.Variant().Next())
		return true, m, nil
	case "m":
		p.SwitchMode(p.Mode().Next())
		return true, m, nil
	case "c":
		p.SwitchColorScheme(p.ColorScheme().Next())
		return true, m, nil
	case "s":
		if m.route != guard.RouteTheme {
			next, cmd := m.show(guard.RouteTheme)
			return true, next, cmd
		}
	}
	return false, m, nil
}

// show resolves route through the guard and swaps in its page.
func (m appModel) show(route string) (tea.Model, tea.Cmd) {
	s := m.session()
	resolved := guard.Resolve(route, s)
	if resolved == guard.RouteHome && s.Authenticated {
		resolved = guard.Resolve(guard.Home(s.Role), s)
	}
	if resolved != guard.Clean(route) {
		m.env.logger.Debug("route redirected",
			zap.String("from", route),
			zap.String("to", resolved),
		)
	}
	if !s.Authenticated && !guard.IsPublic(route) {
		m.requested = guard.Clean(route)
	}
	prev := m.route
	m.route = resolved
	m.page = m.pageFor(resolved, prev)
	return m, m.page.Init()
}

func (m appModel) pageFor(route, prev string) page {
	e := m.env
	switch {
	case route == guard.RouteLogin || route == guard.RouteHome && !e.store.IsAuthenticated():
		return newLoginPage(e, false)
	case route == guard.RouteRegister:
		return newLoginPage(e, true)
	case route == guard.RouteOnboarding:
		return newOnboardingPage(e)
	case route == guard.RouteTheme:
		back := prev
		if back == "" || back == guard.RouteTheme {
			back = guard.Home(userRole(e.store))
		}
		return newThemePage(e, back)
	case guard.Area(route) == guard.RouteTeam:
		return newTeamPage(e)
	case guard.Area(route) == guard.RouteTalent:
		return newTalentPage(e)
	}
	return newHomePage(e)
}

func (m appModel) session() guard.Session {
	st := m.env.store
	return guard.Session{
		Authenticated:          st.IsAuthenticated(),
		Role:                   userRole(st),
		HasCompletedOnboarding: st.User.HasCompletedOnboarding(),
	}
}

func logout(e *env) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{label: "Signed out", err: e.store.Auth.Logout(e.ctx)}
	}
}

// loaded reports a background load. Success and superseded or cancelled
// runs stay silent.
func loaded(label string, err error) tea.Msg {
	if err == nil || errors.Is(err, state.ErrSuperseded) || errors.Is(err, context.Canceled) {
		return opDoneMsg{}
	}
	return opDoneMsg{label: label, err: err}
}

func userRole(st *state.Store) domain.Role {
	if u := st.Auth.Snapshot().Data.User; u != nil {
		return u.Role
	}
	return ""
}

func userID(st *state.Store) string {
	if u := st.Auth.Snapshot().Data.User; u != nil {
		return u.ID
	}
	return ""
}

// reset clears the error boundary and starts over from the current
// session's home.
func (m appModel) reset() (tea.Model, tea.Cmd) {
	m.crash = &boundary{}
	m.status = ""
	return m.show(guard.Home(userRole(m.env.store)))
}

func (m *appModel) setStatus(msg string, isError bool) {
	m.status = msg
	m.isError = isError
}

// applyUserTheme restores the signed-in user's stored theme. Without one,
// an unconfigured variant follows the user's role.
func (m appModel) applyUserTheme() {
	st := m.env.store
	if !st.IsAuthenticated() {
		return
	}
	p := m.env.provider
	if m.prefs != nil {
		if sel, ok := m.prefs.Load(userID(st)); ok {
			m.env.logger.Debug("restoring theme",
				zap.String("variant", string(sel.Variant)),
				zap.String("mode", string(sel.Mode)),
				zap.String("scheme", string(sel.Scheme)),
			)
			p.Select(sel.Variant, sel.Mode, sel.Scheme)
			return
		}
	}
	if !m.fixedVariant {
		p.SwitchVariant(theme.VariantForRole(string(userRole(st))))
	}
}

func (m appModel) rememberTheme() {
	if m.prefs == nil {
		return
	}
	p := m.env.provider
	m.prefs.Remember(userID(m.env.store), themeprefsvc.Selection{
		Variant: p.Variant(),
		Mode:    p.Mode(),
		Scheme:  p.ColorScheme(),
	})
}

// View renders the page inside the header/footer frame.
func (m appModel) View() (out string) {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			m.trip(r)
			out = m.errorView()
		}
	}()
	if m.crash.err != nil {
		return m.errorView()
	}

	s := m.env.styles
	p := m.env.provider
	right := fmt.Sprintf("%s · %s · %s", p.Variant(), p.Theme().Mode, p.ColorScheme())
	header := components.Header(s, m.width, m.page.Title(), right)

	bindings := m.page.Bindings()
	if !m.page.CapturesInput() {
		bindings = append(bindings,
			components.KeyBinding{Key: "t/m/c", Desc: "theme"},
			components.KeyBinding{Key: "s", Desc: "settings"},
			components.KeyBinding{Key: "q", Desc: "quit"},
		)
	}
	footer := components.Footer(s, m.width, bindings)
	status := components.StatusBar(s, m.width, m.status, m.isError)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-lipgloss.Height(status), 1)
	content := m.page.View(m.width, contentH)

	return m.env.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, header, content, status, footer))
}

// errorView is the catch-all screen shown after a panic. It does not
// distinguish error kinds.
func (m appModel) errorView() string {
	s := m.env.styles
	card := s.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.ErrorText.Render("Something went wrong"),
		"",
		s.MutedText.Render("The screen hit an unexpected error."),
		"",
		s.FormatKeyBinding("r", "reset")+"   "+s.FormatKeyBinding("q", "quit"),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
