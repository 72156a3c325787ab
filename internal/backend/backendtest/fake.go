// Package backendtest provides an in-memory backend for command tests.
package backendtest

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"nathanbeddoewebdev/hirectl/internal/backend"
	"nathanbeddoewebdev/hirectl/internal/config"
	"nathanbeddoewebdev/hirectl/internal/database"
	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/services/auth"
	"nathanbeddoewebdev/hirectl/internal/swrcache"
)

// Fake answers every call from its fields. Err, when set, is returned by
// every call instead.
type Fake struct {
	mu    sync.Mutex
	calls []string

	Err error

	User       domain.User
	Talent     domain.TalentProfile
	Employer   domain.EmployerProfile
	Onboarding domain.OnboardingStatus
	Parsed     domain.ParsedCV
	PictureURL string

	Page         domain.JobPage
	Jobs         []domain.Job
	Suggested    []domain.Match
	Applications []domain.Application

	Summary      domain.DashboardSummary
	Credit       domain.CreditBalance
	Ledger       []domain.CreditTransaction
	Notices      []domain.Notification

	// Captured inputs.
	LastQuery    domain.JobQuery
	LastJobInput domain.JobInput
	LastProfile  domain.ProfileUpdate
	LastCover    string
	LastUpload   string
	LastPurchase domain.Purchase
}

// Install points config, database, cache and credentials at temp locations and
// makes backend.Open return f. It returns the token pair so tests can
// sign in.
func Install(t *testing.T, f *Fake) *auth.Tokens {
	t.Helper()
	dir := t.TempDir()
	config.SetPath(filepath.Join(dir, "config.json"))
	database.SetPath(filepath.Join(dir, "hirectl.db"))
	swrcache.SetDir(filepath.Join(dir, "cache"))

	store := auth.NewMockStore()
	backend.UseStore(store)
	backend.Register(func(backend.Deps) (backend.API, error) { return f, nil })

	t.Cleanup(func() {
		backend.Reset()
		config.ResetPath()
		database.ResetPath()
		swrcache.ResetDir()
	})
	return auth.NewTokens(store)
}

// SignIn installs f and stores a session.
func SignIn(t *testing.T, f *Fake) *auth.Tokens {
	t.Helper()
	tokens := Install(t, f)
	if err := tokens.SaveTokens("access", "refresh"); err != nil {
		t.Fatalf("SaveTokens: %v", err)
	}
	return tokens
}

// Calls returns the method names called so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *Fake) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.Err
}

func (f *Fake) session() *domain.Session {
	return &domain.Session{Token: "access", RefreshToken: "refresh", User: f.User}
}

func (f *Fake) Login(ctx context.Context, c domain.Credentials) (*domain.Session, error) {
	if err := f.record("Login"); err != nil {
		return nil, err
	}
	return f.session(), nil
}

func (f *Fake) Register(ctx context.Context, r domain.Registration) (*domain.Session, error) {
	if err := f.record("Register"); err != nil {
		return nil, err
	}
	return f.session(), nil
}

func (f *Fake) Logout(ctx context.Context) error { return f.record("Logout") }

func (f *Fake) Refresh(ctx context.Context) (*domain.Session, error) {
	if err := f.record("Refresh"); err != nil {
		return nil, err
	}
	return f.session(), nil
}

func (f *Fake) Me(ctx context.Context) (*domain.User, error) {
	if err := f.record("Me"); err != nil {
		return nil, err
	}
	u := f.User
	return &u, nil
}

func (f *Fake) GetTalentProfile(ctx context.Context) (*domain.TalentProfile, error) {
	if err := f.record("GetTalentProfile"); err != nil {
		return nil, err
	}
	p := f.Talent
	return &p, nil
}

func (f *Fake) UpdateTalentProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.TalentProfile, error) {
	if err := f.record("UpdateTalentProfile"); err != nil {
		return nil, err
	}
	f.LastProfile = in
	p := f.Talent
	if in.Headline != "" {
		p.Headline = in.Headline
	}
	if len(in.Skills) > 0 {
		p.Skills = in.Skills
	}
	return &p, nil
}

func (f *Fake) GetEmployerProfile(ctx context.Context) (*domain.EmployerProfile, error) {
	if err := f.record("GetEmployerProfile"); err != nil {
		return nil, err
	}
	p := f.Employer
	return &p, nil
}

func (f *Fake) UpdateEmployerProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.EmployerProfile, error) {
	if err := f.record("UpdateEmployerProfile"); err != nil {
		return nil, err
	}
	f.LastProfile = in
	p := f.Employer
	if in.CompanyName != "" {
		p.CompanyName = in.CompanyName
	}
	return &p, nil
}

func (f *Fake) UploadPicture(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := f.record("UploadPicture"); err != nil {
		return "", err
	}
	f.LastUpload = filename
	return f.PictureURL, nil
}

func (f *Fake) OnboardingStatus(ctx context.Context) (*domain.OnboardingStatus, error) {
	if err := f.record("OnboardingStatus"); err != nil {
		return nil, err
	}
	o := f.Onboarding
	return &o, nil
}

func (f *Fake) UploadCV(ctx context.Context, filename string, r io.Reader) (*domain.CVUpload, error) {
	if err := f.record("UploadCV"); err != nil {
		return nil, err
	}
	n, _ := io.Copy(io.Discard, r)
	f.LastUpload = filename
	return &domain.CVUpload{UploadID: "up-1", FileName: filename, Size: n, Status: domain.CVStatusProcessing}, nil
}

func (f *Fake) ParseCV(ctx context.Context, uploadID string) (*domain.ParsedCV, error) {
	if err := f.record("ParseCV"); err != nil {
		return nil, err
	}
	p := f.Parsed
	p.UploadID = uploadID
	return &p, nil
}

func (f *Fake) ConfirmCV(ctx context.Context, parsed domain.ParsedCV) (*domain.TalentProfile, error) {
	if err := f.record("ConfirmCV"); err != nil {
		return nil, err
	}
	p := f.Talent
	p.Headline = parsed.Headline
	p.Skills = parsed.Skills
	return &p, nil
}

func (f *Fake) SearchJobs(ctx context.Context, q domain.JobQuery) (*domain.JobPage, error) {
	if err := f.record("SearchJobs"); err != nil {
		return nil, err
	}
	f.LastQuery = q
	p := f.Page
	return &p, nil
}

func (f *Fake) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	if err := f.record("GetJob"); err != nil {
		return nil, err
	}
	for _, j := range append(slices.Clone(f.Page.Items), f.Jobs...) {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *Fake) ApplyToJob(ctx context.Context, id, coverLetter string) (*domain.Application, error) {
	if err := f.record("ApplyToJob"); err != nil {
		return nil, err
	}
	f.LastCover = coverLetter
	return &domain.Application{ID: "app-1", JobID: id, Status: "submitted", CoverLetter: coverLetter}, nil
}

func (f *Fake) ListMyJobs(ctx context.Context) ([]domain.Job, error) {
	if err := f.record("ListMyJobs"); err != nil {
		return nil, err
	}
	return slices.Clone(f.Jobs), nil
}

func (f *Fake) ListApplications(ctx context.Context) ([]domain.Application, error) {
	if err := f.record("ListApplications"); err != nil {
		return nil, err
	}
	return slices.Clone(f.Applications), nil
}

func (f *Fake) CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	if err := f.record("CreateJob"); err != nil {
		return nil, err
	}
	f.LastJobInput = in
	return &domain.Job{ID: "job-new", Title: in.Title, Location: in.Location, Status: domain.JobStatusOpen}, nil
}

func (f *Fake) UpdateJob(ctx context.Context, id string, in domain.JobInput) (*domain.Job, error) {
	if err := f.record("UpdateJob"); err != nil {
		return nil, err
	}
	f.LastJobInput = in
	return &domain.Job{ID: id, Title: in.Title, Status: in.Status}, nil
}

func (f *Fake) DeleteJob(ctx context.Context, id string) error { return f.record("DeleteJob") }

func (f *Fake) Matches(ctx context.Context, limit int) ([]domain.Match, error) {
	if err := f.record("Matches"); err != nil {
		return nil, err
	}
	return slices.Clone(f.Suggested[:min(limit, len(f.Suggested))]), nil
}

func (f *Fake) DashboardSummary(ctx context.Context, role domain.Role) (*domain.DashboardSummary, error) {
	if err := f.record("DashboardSummary"); err != nil {
		return nil, err
	}
	s := f.Summary
	return &s, nil
}

func (f *Fake) Balance(ctx context.Context) (*domain.CreditBalance, error) {
	if err := f.record("Balance"); err != nil {
		return nil, err
	}
	b := f.Credit
	return &b, nil
}

func (f *Fake) Transactions(ctx context.Context, limit int) ([]domain.CreditTransaction, error) {
	if err := f.record("Transactions"); err != nil {
		return nil, err
	}
	return slices.Clone(f.Ledger[:min(limit, len(f.Ledger))]), nil
}

func (f *Fake) Purchase(ctx context.Context, p domain.Purchase) (*domain.CreditBalance, error) {
	if err := f.record("Purchase"); err != nil {
		return nil, err
	}
	f.LastPurchase = p
	b := f.Credit
	b.Balance += p.Credits
	return &b, nil
}

func (f *Fake) Notifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	if err := f.record("Notifications"); err != nil {
		return nil, err
	}
	if !unreadOnly {
		return slices.Clone(f.Notices), nil
	}
	var out []domain.Notification
	for _, n := range f.Notices {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *Fake) MarkNotificationRead(ctx context.Context, id string) error {
	return f.record("MarkNotificationRead")
}

func (f *Fake) DeleteNotification(ctx context.Context, id string) error {
	return f.record("DeleteNotification")
}

var _ backend.API = (*Fake)(nil)
