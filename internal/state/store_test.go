package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/services/auth"
	"nathanbeddoewebdev/hirectl/internal/swrcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI answers from canned data. Queries with Text "slow" block until
// their context is cancelled.
type fakeAPI struct {
	mu      sync.Mutex
	started chan string

	balanceErr   error
	loginErr     error
	notices      []domain.Notification
	userID       string
	applications int
	summaryCalls int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{started: make(chan string, 8), userID: "u1", applications: 3}
}

func (f *fakeAPI) Login(ctx context.Context, c domain.Credentials) (*domain.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &domain.Session{Token: "tok", RefreshToken: "ref", User: domain.User{ID: f.userID, Email: c.Email, Role: domain.RoleTalent}}, nil
}

func (f *fakeAPI) Register(ctx context.Context, r domain.Registration) (*domain.Session, error) {
	return &domain.Session{Token: "tok", User: domain.User{ID: "u2", Email: r.Email, Role: r.Role}}, nil
}

func (f *fakeAPI) Logout(ctx context.Context) error { return nil }

func (f *fakeAPI) Me(ctx context.Context) (*domain.User, error) {
	return &domain.User{ID: f.userID, Role: domain.RoleTalent}, nil
}

func (f *fakeAPI) GetTalentProfile(ctx context.Context) (*domain.TalentProfile, error) {
	return &domain.TalentProfile{UserID: "u1", Headline: "Gopher"}, nil
}

func (f *fakeAPI) UpdateTalentProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.TalentProfile, error) {
	return &domain.TalentProfile{UserID: "u1", Headline: in.Headline}, nil
}

func (f *fakeAPI) GetEmployerProfile(ctx context.Context) (*domain.EmployerProfile, error) {
	return &domain.EmployerProfile{UserID: "u1", CompanyName: "Acme"}, nil
}

func (f *fakeAPI) UpdateEmployerProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.EmployerProfile, error) {
	return &domain.EmployerProfile{UserID: "u1", CompanyName: in.CompanyName}, nil
}

func (f *fakeAPI) OnboardingStatus(ctx context.Context) (*domain.OnboardingStatus, error) {
	return &domain.OnboardingStatus{CompletionPercent: 40, MissingSteps: []string{"cv"}}, nil
}

func (f *fakeAPI) UploadCV(ctx context.Context, name string, r io.Reader) (*domain.CVUpload, error) {
	return &domain.CVUpload{UploadID: "up-1", FileName: name, Status: domain.CVStatusProcessing}, nil
}

func (f *fakeAPI) ParseCV(ctx context.Context, id string) (*domain.ParsedCV, error) {
	return &domain.ParsedCV{UploadID: id, Headline: "Parsed"}, nil
}

func (f *fakeAPI) ConfirmCV(ctx context.Context, p domain.ParsedCV) (*domain.TalentProfile, error) {
	return &domain.TalentProfile{UserID: "u1", Headline: p.Headline}, nil
}

func (f *fakeAPI) SearchJobs(ctx context.Context, q domain.JobQuery) (*domain.JobPage, error) {
	f.started <- q.Text
	if q.Text == "slow" {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return &domain.JobPage{Items: []domain.Job{{ID: "j-" + q.Text}}, Total: 1}, nil
}

func (f *fakeAPI) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return &domain.Job{ID: id}, nil
}

func (f *fakeAPI) ApplyToJob(ctx context.Context, id, cover string) (*domain.Application, error) {
	return &domain.Application{ID: "a1", JobID: id}, nil
}

func (f *fakeAPI) ListMyJobs(ctx context.Context) ([]domain.Job, error) {
	return []domain.Job{{ID: "j1"}, {ID: "j2"}}, nil
}

func (f *fakeAPI) CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	return &domain.Job{ID: "j3", Title: in.Title}, nil
}

func (f *fakeAPI) DeleteJob(ctx context.Context, id string) error { return nil }

func (f *fakeAPI) Matches(ctx context.Context, limit int) ([]domain.Match, error) {
	return []domain.Match{{Job: domain.Job{ID: "j1"}, Score: 92}}, nil
}

func (f *fakeAPI) DashboardSummary(ctx context.Context, role domain.Role) (*domain.DashboardSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaryCalls++
	return &domain.DashboardSummary{Applications: f.applications, ApplicationsTrend: []float64{1, 2, 3}}, nil
}

func (f *fakeAPI) Balance(ctx context.Context) (*domain.CreditBalance, error) {
	if f.balanceErr != nil {
		return nil, f.balanceErr
	}
	return &domain.CreditBalance{Balance: 25}, nil
}

func (f *fakeAPI) Transactions(ctx context.Context, limit int) ([]domain.CreditTransaction, error) {
	return []domain.CreditTransaction{{ID: "t1", Amount: 10}}, nil
}

func (f *fakeAPI) Purchase(ctx context.Context, p domain.Purchase) (*domain.CreditBalance, error) {
	return &domain.CreditBalance{Balance: 125}, nil
}

func (f *fakeAPI) Notifications(ctx context.Context, unread bool) ([]domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notices, nil
}

func (f *fakeAPI) MarkNotificationRead(ctx context.Context, id string) error { return nil }

func (f *fakeAPI) DeleteNotification(ctx context.Context, id string) error { return nil }

func newTestStore(t *testing.T) (*Store, *fakeAPI, *auth.Tokens) {
	t.Helper()
	api := newFakeAPI()
	tokens := auth.NewTokens(auth.NewMockStore())
	return NewStore(Options{API: api, Tokens: tokens}), api, tokens
}

func TestAuth_LoginStoresTokens(t *testing.T) {
	s, _, tokens := newTestStore(t)

	require.NoError(t, s.Auth.Login(context.Background(), domain.Credentials{Email: "a@b.co", Password: "secret123"}))

	snap := s.Auth.Snapshot()
	assert.True(t, snap.Data.IsAuthenticated)
	assert.False(t, snap.Loading)
	assert.Equal(t, "a@b.co", snap.Data.User.Email)
	tok, err := tokens.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}

func TestAuth_BadCredentialsRecordError(t *testing.T) {
	s, api, _ := newTestStore(t)
	api.loginErr = fmt.Errorf("login: %w", domain.ErrUnauthorized)

	err := s.Auth.Login(context.Background(), domain.Credentials{Email: "a@b.co"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	snap := s.Auth.Snapshot()
	assert.False(t, snap.Data.IsAuthenticated)
	assert.Equal(t, "login: unauthorized", snap.Error)
}

func TestUnauthorized_ForcesLogout(t *testing.T) {
	s, api, tokens := newTestStore(t)
	require.NoError(t, s.Auth.Login(context.Background(), domain.Credentials{Email: "a@b.co"}))
	require.NoError(t, s.Jobs.LoadMine(context.Background()))

	var mu sync.Mutex
	var events []Event
	unsub := s.Subscribe(func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})
	defer unsub()

	api.balanceErr = fmt.Errorf("get credit balance: %w", domain.ErrUnauthorized)
	err := s.Credits.LoadBalance(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.False(t, s.IsAuthenticated())
	assert.False(t, tokens.HasSession())
	assert.Nil(t, s.Jobs.Snapshot().Data.Mine)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, events, Event{Slice: SliceAuth, Op: "reset"})
}

func TestJobs_SearchLatestWins(t *testing.T) {
	s, api, _ := newTestStore(t)

	slowErr := make(chan error, 1)
	go func() {
		slowErr <- s.Jobs.Search(context.Background(), domain.JobQuery{Text: "slow"})
	}()
	require.Equal(t, "slow", <-api.started)

	require.NoError(t, s.Jobs.Search(context.Background(), domain.JobQuery{Text: "go"}))
	<-api.started

	select {
	case err := <-slowErr:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded search did not return")
	}

	snap := s.Jobs.Snapshot()
	require.NotNil(t, snap.Data.Results)
	assert.Equal(t, "j-go", snap.Data.Results.Items[0].ID)
	assert.Equal(t, "go", snap.Data.Query.Text)
	assert.False(t, snap.Loading)
}

func TestSlice_CancelDropsInFlight(t *testing.T) {
	s, api, _ := newTestStore(t)

	done := make(chan error, 1)
	go func() {
		done <- s.Jobs.Search(context.Background(), domain.JobQuery{Text: "slow"})
	}()
	<-api.started
	assert.True(t, s.Jobs.Snapshot().Loading)

	s.Jobs.Cancel()

	assert.ErrorIs(t, <-done, ErrSuperseded)
	snap := s.Jobs.Snapshot()
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Data.Results)
	assert.Empty(t, snap.Error)
}

func TestSlice_ParentCancelDoesNotCommit(t *testing.T) {
	s, api, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- s.Jobs.Search(ctx, domain.JobQuery{Text: "slow"})
	}()
	<-api.started
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	snap := s.Jobs.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
}

func TestStore_LoadDashboard(t *testing.T) {
	s, api, _ := newTestStore(t)
	api.notices = []domain.Notification{{ID: "n1"}, {ID: "n2", Read: true}}

	require.NoError(t, s.LoadDashboard(context.Background(), domain.RoleTalent))

	assert.Equal(t, 3, s.Analytics.Snapshot().Data.Summary.Applications)
	assert.Equal(t, 25, s.Credits.Snapshot().Data.Balance.Balance)
	assert.Equal(t, 1, s.Notifications.Snapshot().Data.Unread)
}

func TestStore_LoadDashboardFirstErrorWins(t *testing.T) {
	s, api, _ := newTestStore(t)
	api.balanceErr = errors.New("boom")

	err := s.LoadDashboard(context.Background(), domain.RoleEmployer)
	require.EqualError(t, err, "boom")
	assert.Equal(t, "boom", s.Credits.Snapshot().Error)
	assert.False(t, s.IsAuthenticated())
}

func TestNotifications_MarkReadAndDelete(t *testing.T) {
	s, api, _ := newTestStore(t)
	api.notices = []domain.Notification{{ID: "n1"}, {ID: "n2"}}
	require.NoError(t, s.Notifications.Load(context.Background()))

	before := s.Notifications.Snapshot()
	require.NoError(t, s.Notifications.MarkRead(context.Background(), "n1"))

	after := s.Notifications.Snapshot()
	assert.Equal(t, 1, after.Data.Unread)
	assert.True(t, after.Data.Items[0].Read)
	assert.False(t, before.Data.Items[0].Read, "earlier snapshot must not change")

	require.NoError(t, s.Notifications.Delete(context.Background(), "n2"))
	assert.Len(t, s.Notifications.Snapshot().Data.Items, 1)
	assert.Equal(t, 0, s.Notifications.Snapshot().Data.Unread)
}

func TestJobs_CreateAndDelete(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Jobs.LoadMine(ctx))
	require.NoError(t, s.Jobs.Create(ctx, domain.JobInput{Title: "SRE"}))

	mine := s.Jobs.Snapshot().Data.Mine
	require.Len(t, mine, 3)
	assert.Equal(t, "j3", mine[0].ID)

	require.NoError(t, s.Jobs.Delete(ctx, "j1"))
	ids := []string{}
	for _, j := range s.Jobs.Snapshot().Data.Mine {
		ids = append(ids, j.ID)
	}
	assert.Equal(t, []string{"j3", "j2"}, ids)
}

func TestUser_ConfirmCVCompletesOnboarding(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.User.LoadOnboarding(ctx))
	assert.False(t, s.User.HasCompletedOnboarding())

	require.NoError(t, s.User.ConfirmCV(ctx, domain.ParsedCV{UploadID: "up-1", Headline: "Backend"}))

	assert.True(t, s.User.HasCompletedOnboarding())
	assert.Equal(t, "Backend", s.User.Snapshot().Data.Talent.Headline)
}

func TestUser_UnknownRole(t *testing.T) {
	s, _, _ := newTestStore(t)
	err := s.User.LoadProfile(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s, _, _ := newTestStore(t)
	count := 0
	unsub := s.Subscribe(func(Event) { count++ })

	s.Realtime.SetConnected(true)
	unsub()
	unsub()
	s.Realtime.SetConnected(false)

	assert.Equal(t, 1, count)
}

func TestRealtime_Presence(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Realtime.SetConnected(true)
	s.Realtime.SetPresence("u9", true)
	assert.True(t, s.Realtime.IsOnline("u9"))

	s.Realtime.SetPresence("u9", false)
	assert.False(t, s.Realtime.IsOnline("u9"))

	s.Realtime.SetPresence("u9", true)
	s.Realtime.SetConnected(false)
	assert.False(t, s.Realtime.IsOnline("u9"))
}

func TestAuth_RestoreCommitsUser(t *testing.T) {
	s, _, tokens := newTestStore(t)
	require.NoError(t, tokens.SaveTokens("tok", "ref"))

	require.NoError(t, s.Auth.Restore(context.Background()))

	snap := s.Auth.Snapshot()
	assert.True(t, snap.Data.IsAuthenticated)
	assert.Equal(t, "u1", snap.Data.User.ID)
	assert.Empty(t, snap.Error)
}

// signedInStore logs userID in against a store backed by the cache in dir.
func signedInStore(t *testing.T, cache *swrcache.Cache, userID string, applications int) (*Store, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	api.userID = userID
	api.applications = applications
	s := NewStore(Options{API: api, Tokens: auth.NewTokens(auth.NewMockStore()), Cache: cache})
	require.NoError(t, s.Auth.Login(context.Background(), domain.Credentials{Email: userID + "@example.com"}))
	return s, api
}

func TestCache_KeptPerUser(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	alice, _ := signedInStore(t, swrcache.New(dir), "user-a", 3)
	require.NoError(t, alice.Analytics.Load(ctx, domain.RoleTalent))
	require.NoError(t, alice.Jobs.Search(ctx, domain.JobQuery{Text: "go"}))

	bob, bobAPI := signedInStore(t, swrcache.New(dir), "user-b", 99)
	require.NoError(t, bob.Analytics.Load(ctx, domain.RoleTalent))
	assert.Equal(t, 99, bob.Analytics.Snapshot().Data.Summary.Applications)
	assert.Equal(t, 1, bobAPI.summaryCalls)

	require.NoError(t, bob.Jobs.Search(ctx, domain.JobQuery{Text: "go"}))
	select {
	case q := <-bobAPI.started:
		assert.Equal(t, "go", q)
	default:
		t.Fatal("user-b's search was answered from user-a's cache")
	}

	// user-a's entry is still fresh and is served without a request.
	again, againAPI := signedInStore(t, swrcache.New(dir), "user-a", 42)
	require.NoError(t, again.Analytics.Load(ctx, domain.RoleTalent))
	assert.Equal(t, 3, again.Analytics.Snapshot().Data.Summary.Applications)
	assert.Equal(t, 0, againAPI.summaryCalls)
}

func TestCache_NotUsedWhileSignedOut(t *testing.T) {
	api := newFakeAPI()
	s := NewStore(Options{API: api, Cache: swrcache.New(t.TempDir())})

	require.NoError(t, s.Analytics.Load(context.Background(), domain.RoleTalent))
	require.NoError(t, s.Analytics.Load(context.Background(), domain.RoleTalent))

	assert.Equal(t, 2, api.summaryCalls)
}

func TestUnauthorized_ClearsCache(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	s, api := signedInStore(t, swrcache.New(dir), "u1", 3)
	require.NoError(t, s.Analytics.Load(ctx, domain.RoleTalent))

	userCache := swrcache.New(dir).Scoped("u1")
	_, _, ok := swrcache.Peek[*domain.DashboardSummary](userCache, summaryCacheKey(domain.RoleTalent))
	require.True(t, ok)

	api.balanceErr = fmt.Errorf("get credit balance: %w", domain.ErrUnauthorized)
	require.ErrorIs(t, s.Credits.LoadBalance(ctx), domain.ErrUnauthorized)

	_, _, ok = swrcache.Peek[*domain.DashboardSummary](userCache, summaryCacheKey(domain.RoleTalent))
	assert.False(t, ok, "cached summary survived a forced logout")
	assert.Nil(t, s.Analytics.Snapshot().Data.Summary)
}

func TestAnalytics_ShowsCachedSummaryWhileReloading(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// Entries go stale at once, so the second load has to wait for the API.
	first, _ := signedInStore(t, swrcache.WithTTLs(dir, 0, time.Nanosecond), "u1", 3)
	require.NoError(t, first.Analytics.Load(ctx, domain.RoleTalent))

	s, _ := signedInStore(t, swrcache.WithTTLs(dir, 0, time.Nanosecond), "u1", 7)
	var preview Snapshot[AnalyticsData]
	unsub := s.Subscribe(func(ev Event) {
		if ev.Slice == SliceAnalytics && ev.Op == opPreview {
			preview = s.Analytics.Snapshot()
		}
	})
	defer unsub()

	require.NoError(t, s.Analytics.Load(ctx, domain.RoleTalent))

	require.NotNil(t, preview.Data.Summary)
	assert.Equal(t, 3, preview.Data.Summary.Applications)
	assert.False(t, preview.Data.CachedAt.IsZero())

	final := s.Analytics.Snapshot().Data
	assert.Equal(t, 7, final.Summary.Applications)
	assert.True(t, final.CachedAt.IsZero())
}
