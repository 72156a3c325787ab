package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/retry"
	"nathanbeddoewebdev/hirectl/internal/services/auth"

	"github.com/google/go-cmp/cmp"
)

// --- Test helpers ---

// newTestClient creates a Client pointed at the given test server with
// stored tokens and instant retries.
func newTestClient(t *testing.T, serverURL string) (*Client, *auth.Tokens) {
	t.Helper()
	tokens := auth.NewTokens(auth.NewMockStore())
	if err := tokens.SaveTokens("access-1", "refresh-1"); err != nil {
		t.Fatalf("SaveTokens() error = %v", err)
	}
	c := New(Options{
		BaseURL: serverURL,
		Tokens:  tokens,
		Retry:   &retry.Config{MaxAttempts: 3},
	})
	return c, tokens
}

// dataEnvelope wraps v the way the backend wraps most responses.
func dataEnvelope(v any) map[string]any {
	return map[string]any{"success": true, "data": v}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func testJobJSON(id, title string) map[string]any {
	return map[string]any{
		"id":             id,
		"title":          title,
		"companyName":    "Acme",
		"location":       "Berlin",
		"remote":         true,
		"skills":         []any{"go", "sql"},
		"status":         "open",
		"applicantCount": 4,
		"createdAt":      "2025-03-01T10:00:00Z",
	}
}

// --- Request shape ---

func TestClient_SetsAuthAndRequestID(t *testing.T) {
	var gotAuth, gotID, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		writeJSON(t, w, http.StatusOK, dataEnvelope(map[string]any{"id": "u1", "email": "a@b.co", "role": "recruiter"}))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	u, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}

	if gotAuth != "Bearer access-1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer access-1")
	}
	if len(gotID) != 36 {
		t.Errorf("X-Request-ID = %q, want a uuid", gotID)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if u.Role != domain.RoleEmployer {
		t.Errorf("Role = %q, want %q (alias normalised)", u.Role, domain.RoleEmployer)
	}
}

func TestClient_NoTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, map[string]any{"token": "t", "refreshToken": "r", "user": map[string]any{"id": "u1"}})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	s, err := c.Login(context.Background(), domain.Credentials{Email: "a@b.co", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
	if s.Token != "t" || s.User.ID != "u1" {
		t.Errorf("session = %+v", s)
	}
}

// --- Envelope normalisation ---

func TestSearchJobs_EnvelopeAndQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs" {
			t.Errorf("path = %q, want /jobs", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		writeJSON(t, w, http.StatusOK, dataEnvelope(map[string]any{
			"items":   []any{testJobJSON("j1", "Go Engineer"), testJobJSON("j2", "SRE")},
			"total":   12,
			"page":    2,
			"perPage": 2,
		}))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	page, err := c.SearchJobs(context.Background(), domain.JobQuery{Text: "go", Remote: true, Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("SearchJobs() error = %v", err)
	}

	if gotQuery != "page=2&perPage=2&q=go&remote=true" {
		t.Errorf("query = %q", gotQuery)
	}

	want := &domain.JobPage{
		Items: []domain.Job{
			{ID: "j1", Title: "Go Engineer", CompanyName: "Acme", Location: "Berlin", Remote: true, Skills: []string{"go", "sql"}, Status: domain.JobStatusOpen, Applicants: 4, CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
			{ID: "j2", Title: "SRE", CompanyName: "Acme", Location: "Berlin", Remote: true, Skills: []string{"go", "sql"}, Status: domain.JobStatusOpen, Applicants: 4, CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		},
		Total:   12,
		Page:    2,
		PerPage: 2,
	}
	if diff := cmp.Diff(want, page); diff != "" {
		t.Errorf("SearchJobs() mismatch (-want +got):\n%s", diff)
	}
}

func TestListMyJobs_UnwrapsItemsAndBareArrays(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"bare array", []any{testJobJSON("j1", "A")}},
		{"data array", dataEnvelope([]any{testJobJSON("j1", "A")})},
		{"data items", dataEnvelope(map[string]any{"items": []any{testJobJSON("j1", "A")}})},
		{"results", map[string]any{"results": []any{testJobJSON("j1", "A")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, tt.body)
			}))
			defer srv.Close()

			c, _ := newTestClient(t, srv.URL)
			jobs, err := c.ListMyJobs(context.Background())
			if err != nil {
				t.Fatalf("ListMyJobs() error = %v", err)
			}
			if len(jobs) != 1 || jobs[0].ID != "j1" {
				t.Errorf("jobs = %+v", jobs)
			}
		})
	}
}

func TestNormalize_KeepsResourceWithDataField(t *testing.T) {
	raw := map[string]any{"id": "n1", "data": "payload"}
	var out map[string]any
	got := normalize(raw, &out)
	if diff := cmp.Diff(raw, got); diff != "" {
		t.Errorf("normalize() mismatch (-want +got):\n%s", diff)
	}
}

// --- Error mapping ---

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		status  int
		body    map[string]any
		want    error
		wantMsg string
	}{
		{http.StatusNotFound, map[string]any{"message": "job not found"}, domain.ErrNotFound, "job not found"},
		{http.StatusConflict, map[string]any{"error": "already applied"}, domain.ErrConflict, "already applied"},
		{http.StatusUnprocessableEntity, map[string]any{"message": "invalid", "errors": map[string]any{"title": "required"}}, domain.ErrValidation, "title: required"},
		{http.StatusPaymentRequired, map[string]any{"message": "top up"}, domain.ErrInsufficientCredits, "top up"},
		{http.StatusForbidden, map[string]any{"message": "nope"}, domain.ErrUnauthorized, "nope"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			c, _ := newTestClient(t, srv.URL)
			_, err := c.ApplyToJob(context.Background(), "j1", "")
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) || apiErr.HTTPStatus() != tt.status {
				t.Errorf("errors.As(*Error) status = %v, want %d", apiErr, tt.status)
			}
		})
	}
}

// --- Retry ---

func TestClient_GETRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(t, w, http.StatusServiceUnavailable, map[string]any{"message": "busy"})
			return
		}
		writeJSON(t, w, http.StatusOK, dataEnvelope(map[string]any{"balance": 40, "currency": "credits"}))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	b, err := c.Balance(context.Background())
	if err != nil {
		t.Fatalf("Balance() error = %v", err)
	}
	if b.Balance != 40 {
		t.Errorf("Balance = %d, want 40", b.Balance)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestClient_MutationsDoNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusServiceUnavailable, map[string]any{"message": "busy"})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Purchase(context.Background(), domain.Purchase{PackageID: "p-100"})
	if err == nil {
		t.Fatal("Purchase() expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestClient_RequestIDStableAcrossRetries(t *testing.T) {
	var (
		mu  sync.Mutex
		ids []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		ids = append(ids, r.Header.Get("X-Request-ID"))
		first := len(ids) == 1
		mu.Unlock()
		if first {
			writeJSON(t, w, http.StatusBadGateway, map[string]any{})
			return
		}
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	if _, err := c.Notifications(context.Background(), false); err != nil {
		t.Fatalf("Notifications() error = %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(ids) != 2 || ids[0] != ids[1] {
		t.Errorf("request ids = %v, want two equal ids", ids)
	}
}

// --- Refresh ---

func TestClient_RefreshesOnceOn401(t *testing.T) {
	var refreshCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshCalls.Add(1)
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["refreshToken"] != "refresh-1" {
				t.Errorf("refreshToken = %q", body["refreshToken"])
			}
			writeJSON(t, w, http.StatusOK, dataEnvelope(map[string]any{"token": "access-2", "refreshToken": "refresh-2"}))
		case "/onboarding/status":
			if r.Header.Get("Authorization") != "Bearer access-2" {
				writeJSON(t, w, http.StatusUnauthorized, map[string]any{"message": "expired"})
				return
			}
			writeJSON(t, w, http.StatusOK, map[string]any{"hasCompletedOnboarding": true, "completionPercent": 100})
		}
	}))
	defer srv.Close()

	c, tokens := newTestClient(t, srv.URL)
	st, err := c.OnboardingStatus(context.Background())
	if err != nil {
		t.Fatalf("OnboardingStatus() error = %v", err)
	}
	if !st.HasCompletedOnboarding {
		t.Error("HasCompletedOnboarding = false, want true")
	}
	if got := refreshCalls.Load(); got != 1 {
		t.Errorf("refresh calls = %d, want 1", got)
	}
	access, _ := tokens.AccessToken()
	refresh, _ := tokens.RefreshToken()
	if access != "access-2" || refresh != "refresh-2" {
		t.Errorf("stored tokens = %q/%q, want access-2/refresh-2", access, refresh)
	}
}

func TestClient_RefreshFailureReturnsUnauthorized(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"message": "expired"})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.DashboardSummary(context.Background(), domain.RoleTalent)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	// original request + refresh attempt, no replay and no retry.
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestClient_AuthEndpointsDoNotRefresh(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"message": "bad credentials"})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), domain.Credentials{Email: "a@b.co", Password: "wrong"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

// --- Multipart ---

func TestUploadCV_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cv/upload" {
			t.Errorf("path = %q", r.URL.Path)
		}
		file, header, err := r.FormFile("cv")
		if err != nil {
			t.Fatalf("FormFile() error = %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if header.Filename != "cv.pdf" || string(data) != "%PDF-1.7" {
			t.Errorf("upload = %q %q", header.Filename, data)
		}
		writeJSON(t, w, http.StatusCreated, dataEnvelope(map[string]any{"uploadId": "up-1", "size": len(data)}))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	up, err := c.UploadCV(context.Background(), "cv.pdf", strings.NewReader("%PDF-1.7"))
	if err != nil {
		t.Fatalf("UploadCV() error = %v", err)
	}
	want := &domain.CVUpload{UploadID: "up-1", FileName: "cv.pdf", Size: 8, Status: domain.CVStatusProcessing}
	if diff := cmp.Diff(want, up); diff != "" {
		t.Errorf("UploadCV() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfirmCV_PathAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/cv/up-1/confirm" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body domain.ParsedCV
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(t, w, http.StatusOK, dataEnvelope(map[string]any{"headline": body.Headline, "skills": body.Skills}))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	p, err := c.ConfirmCV(context.Background(), domain.ParsedCV{UploadID: "up-1", Headline: "Backend dev", Skills: []string{"go"}})
	if err != nil {
		t.Fatalf("ConfirmCV() error = %v", err)
	}
	if p.Headline != "Backend dev" || len(p.Skills) != 1 {
		t.Errorf("profile = %+v", p)
	}
}

func TestDeleteNotification_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.EscapedPath() != "/notifications/n%201" {
			t.Errorf("%s %s", r.Method, r.URL.EscapedPath())
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	if err := c.DeleteNotification(context.Background(), "n 1"); err != nil {
		t.Fatalf("DeleteNotification() error = %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{BaseURL: "  https://example.test/v1/ "})
	if c.BaseURL() != "https://example.test/v1" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
	if c.http.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.http.Timeout, DefaultTimeout)
	}
	if New(Options{}).BaseURL() != DefaultBaseURL {
		t.Errorf("default base url not applied")
	}
}
