package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/guard"
	"nathanbeddoewebdev/hirectl/internal/services/auth"
	themeprefsvc "nathanbeddoewebdev/hirectl/internal/services/themeprefs"
	"nathanbeddoewebdev/hirectl/internal/state"
	"nathanbeddoewebdev/hirectl/internal/theme"
	"nathanbeddoewebdev/hirectl/internal/themeprefs"
	"nathanbeddoewebdev/hirectl/internal/tui/components"
	"nathanbeddoewebdev/hirectl/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAPI answers the calls the app makes. Anything else panics through
// the nil embedded interface.
type stubAPI struct {
	state.API
	role       domain.Role
	onboarded  bool
	matches    []domain.Match
	appliedIDs []string
}

func (s *stubAPI) Login(ctx context.Context, c domain.Credentials) (*domain.Session, error) {
	return &domain.Session{Token: "tok", RefreshToken: "ref", User: domain.User{ID: "u1", Email: c.Email, Role: s.role}}, nil
}

func (s *stubAPI) Logout(ctx context.Context) error { return nil }

func (s *stubAPI) Me(ctx context.Context) (*domain.User, error) {
	return &domain.User{ID: "u1", Role: s.role}, nil
}

func (s *stubAPI) OnboardingStatus(ctx context.Context) (*domain.OnboardingStatus, error) {
	return &domain.OnboardingStatus{HasCompletedOnboarding: s.onboarded}, nil
}

func (s *stubAPI) Matches(ctx context.Context, limit int) ([]domain.Match, error) {
	return s.matches, nil
}

func (s *stubAPI) ApplyToJob(ctx context.Context, id, cover string) (*domain.Application, error) {
	s.appliedIDs = append(s.appliedIDs, id)
	return &domain.Application{ID: "a1", JobID: id}, nil
}

func newTestEnv(t *testing.T, api *stubAPI) *env {
	t.Helper()
	prov := theme.NewProvider(theme.ProviderOptions{Preference: theme.StaticPreference(false)})
	store := state.NewStore(state.Options{
		API:    api,
		Tokens: auth.NewTokens(auth.NewMockStore()),
	})
	return &env{
		ctx:      context.Background(),
		store:    store,
		provider: prov,
		styles:   styles.New(prov.Theme()),
		zones:    zone.New(),
		logger:   zap.NewNop(),
	}
}

func signIn(t *testing.T, e *env) {
	t.Helper()
	require.NoError(t, e.store.Auth.Login(e.ctx, domain.Credentials{Email: "a@b.co", Password: "secret123"}))
	require.NoError(t, loadOnboarding(e))
}

func send(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_UnauthenticatedIsSentToLogin(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleTalent})
	m := newAppModel(e, nil, "/talent")

	m = send(t, m, sessionReadyMsg{})

	assert.Equal(t, guard.RouteLogin, m.route)
	assert.Equal(t, guard.RouteTalent, m.requested)
	_, ok := m.page.(*loginPage)
	assert.True(t, ok)
}

func TestApp_LoginReturnsToRequestedRoute(t *testing.T) {
	api := &stubAPI{role: domain.RoleTalent, onboarded: true}
	e := newTestEnv(t, api)
	m := newAppModel(e, nil, "/talent")
	m = send(t, m, sessionReadyMsg{})

	signIn(t, e)
	m = send(t, m, loginDoneMsg{})

	assert.Equal(t, guard.RouteTalent, m.route)
	_, ok := m.page.(*talentPage)
	assert.True(t, ok)
}

func TestApp_TalentWithoutOnboardingGoesToOnboarding(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleTalent})
	signIn(t, e)
	m := newAppModel(e, nil, "/talent")

	m = send(t, m, sessionReadyMsg{})

	assert.Equal(t, guard.RouteOnboarding, m.route)
	_, ok := m.page.(*onboardingPage)
	assert.True(t, ok)
}

func TestApp_EmployerHomeIsTeam(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleEmployer})
	signIn(t, e)
	m := newAppModel(e, nil, "")

	m = send(t, m, sessionReadyMsg{})

	assert.Equal(t, guard.RouteTeam, m.route)
	_, ok := m.page.(*teamPage)
	assert.True(t, ok)
}

func TestApp_EmployerCannotOpenTalentArea(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleEmployer})
	signIn(t, e)
	m := newAppModel(e, nil, "")
	m = send(t, m, sessionReadyMsg{})

	m = send(t, m, navigateMsg{to: "/talent/matches"})

	assert.Equal(t, guard.RouteTeam, m.route)
}

func TestApp_ForcedLogoutReturnsToLogin(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleEmployer})
	signIn(t, e)
	m := newAppModel(e, nil, "")
	m = send(t, m, sessionReadyMsg{})
	require.Equal(t, guard.RouteTeam, m.route)

	e.store.ForceLogout()
	m = send(t, m, stateChangedMsg{ev: state.Event{Slice: state.SliceAuth, Op: "reset"}})

	assert.Equal(t, guard.RouteLogin, m.route)
}

func TestApp_GlobalThemeKeys(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleEmployer})
	signIn(t, e)
	m := newAppModel(e, nil, "")
	m = send(t, m, sessionReadyMsg{})

	before := e.provider.Variant()
	m = send(t, m, key("t"))
	assert.Equal(t, before.Next(), e.provider.Variant())

	m = send(t, m, key("c"))
	assert.Equal(t, theme.SchemeHighContrast, e.provider.ColorScheme())

	m = send(t, m, key("s"))
	assert.Equal(t, guard.RouteTheme, m.route)
}

func TestApp_ThemeKeysIgnoredWhilePageCapturesInput(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleTalent})
	m := newAppModel(e, nil, "")
	m = send(t, m, sessionReadyMsg{})
	require.True(t, m.page.CapturesInput())

	before := e.provider.Variant()
	send(t, m, key("t"))

	assert.Equal(t, before, e.provider.Variant())
}

func TestApp_VariantFollowsRole(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleTalent, onboarded: true})
	require.Equal(t, theme.VariantTeams, e.provider.Variant())
	signIn(t, e)
	m := newAppModel(e, nil, "")

	send(t, m, sessionReadyMsg{})

	assert.Equal(t, theme.VariantTalent, e.provider.Variant())
}

func TestApp_LoginPicksRoleVariant(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleTalent, onboarded: true})
	m := newAppModel(e, nil, "")
	m = send(t, m, sessionReadyMsg{})
	require.Equal(t, theme.VariantTeams, e.provider.Variant())

	signIn(t, e)
	send(t, m, loginDoneMsg{})

	assert.Equal(t, theme.VariantTalent, e.provider.Variant())
}

func TestApp_ConfiguredVariantIsKept(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleTalent, onboarded: true})
	signIn(t, e)
	m := newAppModel(e, nil, "")
	m.fixedVariant = true

	send(t, m, sessionReadyMsg{})

	assert.Equal(t, theme.VariantTeams, e.provider.Variant())
}

func TestApp_RestoresStoredTheme(t *testing.T) {
	repo, err := themeprefs.OpenAt(filepath.Join(t.TempDir(), "hirectl.db"))
	require.NoError(t, err)
	prefs := themeprefsvc.NewService(repo, nil)
	t.Cleanup(func() { _ = prefs.Close() })

	stored := themeprefsvc.Selection{Variant: theme.VariantTeams, Mode: theme.ModeDark, Scheme: theme.SchemeColorblind}
	prefs.Remember("u1", stored)

	e := newTestEnv(t, &stubAPI{role: domain.RoleTalent, onboarded: true})
	signIn(t, e)
	m := newAppModel(e, prefs, "")

	send(t, m, sessionReadyMsg{})

	// The stored choice wins over the talent role.
	assert.Equal(t, theme.VariantTeams, e.provider.Variant())
	assert.Equal(t, theme.ModeDark, e.provider.Mode())
	assert.Equal(t, theme.SchemeColorblind, e.provider.ColorScheme())
}

func TestApp_ThemeChangeRebuildsStyles(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleEmployer})
	m := newAppModel(e, nil, "")
	old := e.styles

	e.provider.SwitchColorScheme(theme.SchemeHighContrast)
	send(t, m, themeChangedMsg{theme: e.provider.Theme()})

	assert.NotSame(t, old, e.styles)
	assert.Equal(t, theme.SchemeHighContrast, e.styles.Theme.Scheme)
}

// panicPage blows up on any key.
type panicPage struct{}

func (panicPage) Init() tea.Cmd { return nil }
func (panicPage) Update(msg tea.Msg) (page, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		panic("boom")
	}
	return panicPage{}, nil
}
func (panicPage) View(int, int) string              { return "" }
func (panicPage) Title() string                     { return "panic" }
func (panicPage) Bindings() []components.KeyBinding { return nil }
func (panicPage) CapturesInput() bool               { return true }

func TestApp_ErrorBoundary(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleEmployer})
	signIn(t, e)
	m := newAppModel(e, nil, "")
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.page = panicPage{}

	m = send(t, m, key("x"))
	require.Error(t, m.crash.err)
	assert.Contains(t, m.View(), "Something went wrong")

	m = send(t, m, key("r"))
	assert.NoError(t, m.crash.err)
	assert.Equal(t, guard.RouteTeam, m.route)
	assert.NotContains(t, m.View(), "Something went wrong")
}

func TestTalentPage_MatchesAndApply(t *testing.T) {
	api := &stubAPI{
		role:      domain.RoleTalent,
		onboarded: true,
		matches: []domain.Match{
			{Job: domain.Job{ID: "j1", Title: "Go developer"}, Score: 91},
			{Job: domain.Job{ID: "j2", Title: "SRE"}, Score: 55},
		},
	}
	e := newTestEnv(t, api)
	p := newTalentPage(e)

	require.NoError(t, e.store.Jobs.LoadMatches(e.ctx, matchLimit))
	p.Update(stateChangedMsg{ev: state.Event{Slice: state.SliceJobs, Op: "matches"}})
	require.Len(t, p.matches.Options(), 2)

	p.matches.SetValue("j2")
	_, cmd := p.Update(key("a"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(opDoneMsg)
	require.True(t, ok)
	assert.NoError(t, msg.err)
	assert.Equal(t, []string{"j2"}, api.appliedIDs)
}

func TestTalentPage_ApplyNeedsSelection(t *testing.T) {
	e := newTestEnv(t, &stubAPI{role: domain.RoleTalent})
	p := newTalentPage(e)

	_, cmd := p.Update(key("a"))
	msg, ok := cmd().(opDoneMsg)
	require.True(t, ok)
	assert.Error(t, msg.err)
}

func TestMatchBand(t *testing.T) {
	assert.Equal(t, "Strong matches", matchBand(80))
	assert.Equal(t, "Good matches", matchBand(60))
	assert.Equal(t, "", matchBand(59))
}

func TestThemePage_SelectSwitchesProvider(t *testing.T) {
	e := newTestEnv(t, &stubAPI{})
	p := newThemePage(e, guard.RouteHome)

	// Focus the mode select, open it and choose "dark".
	p.Update(tea.KeyMsg{Type: tea.KeyTab})
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, p.CapturesInput())
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, theme.ModeDark, e.provider.Mode())
	assert.False(t, p.CapturesInput())
}

func TestThemePage_EscGoesBack(t *testing.T) {
	e := newTestEnv(t, &stubAPI{})
	p := newThemePage(e, guard.RouteTeam)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, navigateMsg{to: guard.RouteTeam}, cmd())
}

func TestLoaded_SilentOnSuccessAndSupersede(t *testing.T) {
	assert.Equal(t, opDoneMsg{}, loaded("x", nil))
	assert.Equal(t, opDoneMsg{}, loaded("x", state.ErrSuperseded))
	assert.Equal(t, opDoneMsg{}, loaded("x", context.Canceled))
	msg := loaded("x", domain.ErrNotFound).(opDoneMsg)
	assert.Equal(t, "x", msg.label)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/gopher")
	assert.Equal(t, "/home/gopher/cv.pdf", expandHome("~/cv.pdf"))
	assert.Equal(t, "/tmp/cv.pdf", expandHome("/tmp/cv.pdf"))
	assert.True(t, strings.HasPrefix(expandHome("~"), "/home/gopher"))
}
