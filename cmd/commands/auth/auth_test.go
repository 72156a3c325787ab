package auth

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"nathanbeddoewebdev/hirectl/internal/backend/backendtest"
	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/swrcache"
)

func execAuth(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestLogin_StoresSession(t *testing.T) {
	fake := &backendtest.Fake{User: domain.User{ID: "u1", Email: "ada@example.com", FirstName: "Ada", Role: domain.RoleTalent}}
	tokens := backendtest.Install(t, fake)

	stdout, _, err := execAuth(t, "s3cret-pass\n", "login", "--email", "ada@example.com", "--password-stdin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(stdout, "Signed in as Ada (talent)") {
		t.Errorf("unexpected output: %s", stdout)
	}
	if !tokens.HasSession() {
		t.Error("expected a stored session")
	}
}

func TestLogin_InvalidEmail(t *testing.T) {
	fake := &backendtest.Fake{}
	backendtest.Install(t, fake)

	_, _, err := execAuth(t, "pw\n", "login", "--email", "nope", "--password-stdin")
	if err == nil {
		t.Fatal("expected an error for an invalid email")
	}
	if len(fake.Calls()) != 0 {
		t.Errorf("backend called: %v", fake.Calls())
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	fake := &backendtest.Fake{Err: domain.ErrUnauthorized}
	tokens := backendtest.Install(t, fake)

	_, _, err := execAuth(t, "wrong\n", "login", "--email", "ada@example.com", "--password-stdin")
	if err == nil || !strings.Contains(err.Error(), "sign in failed") {
		t.Fatalf("expected sign in failure, got %v", err)
	}
	if tokens.HasSession() {
		t.Error("no session should be stored")
	}
}

func TestLogout_ClearsTokens(t *testing.T) {
	fake := &backendtest.Fake{}
	tokens := backendtest.SignIn(t, fake)

	stdout, _, err := execAuth(t, "", "logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !strings.Contains(stdout, "Signed out.") {
		t.Errorf("unexpected output: %s", stdout)
	}
	if tokens.HasSession() {
		t.Error("session still stored")
	}
}

func TestLogout_ClearsCachedResponses(t *testing.T) {
	fake := &backendtest.Fake{}
	backendtest.SignIn(t, fake)

	cache := swrcache.NewDefault().Scoped("u1")
	_, err := swrcache.GetOrFetch(cache, context.Background(), "dashboard-summary-talent", func(context.Context) (int, error) {
		return 3, nil
	})
	if err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	if _, _, err := execAuth(t, "", "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, _, ok := swrcache.Peek[int](cache, "dashboard-summary-talent"); ok {
		t.Error("cached dashboard survived logout")
	}
}

func TestLogout_ServerFailureStillClears(t *testing.T) {
	fake := &backendtest.Fake{Err: domain.ErrRateLimited}
	tokens := backendtest.SignIn(t, fake)

	if _, _, err := execAuth(t, "", "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if tokens.HasSession() {
		t.Error("session still stored")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		signedIn bool
		err      error
		want     string
	}{
		{name: "signed out", want: "not signed in"},
		{name: "signed in", signedIn: true, want: "signed in as ada@example.com (employer)"},
		{name: "expired", signedIn: true, err: domain.ErrUnauthorized, want: "expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &backendtest.Fake{Err: tt.err, User: domain.User{Email: "ada@example.com", Role: domain.RoleEmployer}}
			if tt.signedIn {
				backendtest.SignIn(t, fake)
			} else {
				backendtest.Install(t, fake)
			}

			stdout, _, err := execAuth(t, "", "status")
			if err != nil {
				t.Fatalf("status: %v", err)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, stdout)
			}
		})
	}
}

func TestWhoami_RequiresSession(t *testing.T) {
	backendtest.Install(t, &backendtest.Fake{})

	_, _, err := execAuth(t, "", "whoami")
	if err == nil || !strings.Contains(err.Error(), "not signed in") {
		t.Fatalf("expected not signed in, got %v", err)
	}
}

func TestWhoami_JSON(t *testing.T) {
	backendtest.SignIn(t, &backendtest.Fake{User: domain.User{ID: "u9", Email: "x@y.io", Role: domain.RoleTalent}})

	stdout, _, err := execAuth(t, "", "whoami", "-o", "json")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(stdout, `"id": "u9"`) {
		t.Errorf("unexpected json: %s", stdout)
	}
}
