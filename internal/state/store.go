// Package state holds the client-side application state: one slice per
// concern (auth, user, jobs, analytics, credits, notifications, realtime).
//
// Every asynchronous operation is cancellable and latest-wins. Starting an
// operation cancels the previous operation of the same kind in the same
// slice, and a result is committed only if its context is still live and
// its generation is still current. Any ErrUnauthorized forces a logout.
package state

import (
	"context"
	"io"
	"sync"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/swrcache"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// API is the subset of the backend client the state layer needs.
type API interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)

	GetTalentProfile(ctx context.Context) (*domain.TalentProfile, error)
	UpdateTalentProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.TalentProfile, error)
	GetEmployerProfile(ctx context.Context) (*domain.EmployerProfile, error)
	UpdateEmployerProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.EmployerProfile, error)
	OnboardingStatus(ctx context.Context) (*domain.OnboardingStatus, error)
	UploadCV(ctx context.Context, filename string, r io.Reader) (*domain.CVUpload, error)
	ParseCV(ctx context.Context, uploadID string) (*domain.ParsedCV, error)
	ConfirmCV(ctx context.Context, parsed domain.ParsedCV) (*domain.TalentProfile, error)

	SearchJobs(ctx context.Context, q domain.JobQuery) (*domain.JobPage, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	ApplyToJob(ctx context.Context, id, coverLetter string) (*domain.Application, error)
	ListMyJobs(ctx context.Context) ([]domain.Job, error)
	CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error)
	DeleteJob(ctx context.Context, id string) error
	Matches(ctx context.Context, limit int) ([]domain.Match, error)

	DashboardSummary(ctx context.Context, role domain.Role) (*domain.DashboardSummary, error)

	Balance(ctx context.Context) (*domain.CreditBalance, error)
	Transactions(ctx context.Context, limit int) ([]domain.CreditTransaction, error)
	Purchase(ctx context.Context, p domain.Purchase) (*domain.CreditBalance, error)

	Notifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	DeleteNotification(ctx context.Context, id string) error
}

// TokenStore persists the session token pair.
type TokenStore interface {
	SaveTokens(access, refresh string) error
	ClearTokens() error
	HasSession() bool
}

// Slice names carried by events.
const (
	SliceAuth          = "auth"
	SliceUser          = "user"
	SliceJobs          = "jobs"
	SliceAnalytics     = "analytics"
	SliceCredits       = "credits"
	SliceNotifications = "notifications"
	SliceRealtime      = "realtime"
)

// Event tells subscribers that a slice snapshot changed.
type Event struct {
	Slice string
	Op    string
}

// Options configures a Store.
type Options struct {
	API    API
	Tokens TokenStore
	Logger *zap.Logger
	// Cache enables stale-while-revalidate for the dashboard summary and
	// job search. Entries are kept per signed-in user. Nil disables
	// caching.
	Cache *swrcache.Cache
}

// Store composes the slices and fans their changes out to subscribers.
type Store struct {
	api    API
	tokens TokenStore
	logger *zap.Logger
	cache  *swrcache.Cache

	scopeMu   sync.Mutex
	scopedFor string
	scoped    *swrcache.Cache

	Auth          *AuthSlice
	User          *UserSlice
	Jobs          *JobsSlice
	Analytics     *AnalyticsSlice
	Credits       *CreditsSlice
	Notifications *NotificationsSlice
	Realtime      *RealtimeSlice

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Event)

	resetMu sync.Mutex
}

// NewStore creates a Store with empty slices.
func NewStore(opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		api:    opts.API,
		tokens: opts.Tokens,
		logger: log.Named("state"),
		cache:  opts.Cache,
		subs:   make(map[int]func(Event)),
	}
	s.Auth = &AuthSlice{base: newBase[AuthData](s, SliceAuth)}
	s.User = &UserSlice{base: newBase[UserData](s, SliceUser)}
	s.Jobs = &JobsSlice{base: newBase[JobsData](s, SliceJobs)}
	s.Analytics = &AnalyticsSlice{base: newBase[AnalyticsData](s, SliceAnalytics)}
	s.Credits = &CreditsSlice{base: newBase[CreditsData](s, SliceCredits)}
	s.Notifications = &NotificationsSlice{base: newBase[NotificationsData](s, SliceNotifications)}
	s.Realtime = &RealtimeSlice{base: newBase[RealtimeData](s, SliceRealtime)}
	return s
}

// Subscribe registers fn for every change. The returned function removes
// the subscription and is safe to call more than once.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) emit(ev Event) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	return s.Auth.Snapshot().Data.IsAuthenticated
}

// userCache returns the cache scoped to the signed-in user, or nil when
// caching is off or nobody is signed in.
func (s *Store) userCache() *swrcache.Cache {
	if s.cache == nil {
		return nil
	}
	u := s.Auth.Snapshot().Data.User
	if u == nil || u.ID == "" {
		return nil
	}

	s.scopeMu.Lock()
	defer s.scopeMu.Unlock()
	if s.scoped == nil || s.scopedFor != u.ID {
		s.scoped = s.cache.Scoped(u.ID)
		s.scopedFor = u.ID
	}
	return s.scoped
}

// LoadDashboard fetches the summary, notifications and credit balance
// concurrently. The first failure cancels the rest.
func (s *Store) LoadDashboard(ctx context.Context, role domain.Role) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Analytics.Load(gctx, role) })
	g.Go(func() error { return s.Notifications.Load(gctx) })
	g.Go(func() error { return s.Credits.LoadBalance(gctx) })
	return g.Wait()
}

// Cancel abandons in-flight work in every slice.
func (s *Store) Cancel() {
	s.Auth.Cancel()
	s.User.Cancel()
	s.Jobs.Cancel()
	s.Analytics.Cancel()
	s.Credits.Cancel()
	s.Notifications.Cancel()
}

// ForceLogout clears the stored tokens and every user-scoped slice. It
// runs when any operation fails with ErrUnauthorized.
func (s *Store) ForceLogout() {
	s.resetMu.Lock()
	defer s.resetMu.Unlock()

	if s.tokens != nil {
		if err := s.tokens.ClearTokens(); err != nil {
			s.logger.Warn("failed to clear tokens", zap.Error(err))
		}
	}
	s.Cancel()
	s.Auth.reset()
	s.User.reset()
	s.Jobs.reset()
	s.Analytics.reset()
	s.Credits.reset()
	s.Notifications.reset()
	s.Realtime.reset()

	s.scopeMu.Lock()
	s.scoped, s.scopedFor = nil, ""
	s.scopeMu.Unlock()
	if err := s.cache.Clear(); err != nil {
		s.logger.Debug("failed to clear cache", zap.Error(err))
	}
}
