package credits

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/hirectl/internal/backend/backendtest"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func execCredits(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var outBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return outBuf.String(), err
}

func TestBalance(t *testing.T) {
	backendtest.SignIn(t, &backendtest.Fake{Credit: domain.CreditBalance{Balance: 1250}})

	stdout, err := execCredits(t, "balance")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !strings.Contains(stdout, "Balance: 1,250 credits") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestBalance_NotSignedIn(t *testing.T) {
	backendtest.Install(t, &backendtest.Fake{})

	_, err := execCredits(t, "balance")
	if err == nil || !strings.Contains(err.Error(), "not signed in") {
		t.Fatalf("expected sign-in error, got %v", err)
	}
}

func TestTransactions(t *testing.T) {
	now := time.Now()
	fake := &backendtest.Fake{Ledger: []domain.CreditTransaction{
		{ID: "t1", Amount: 50, Kind: "purchase", Description: "Standard pack", CreatedAt: now.Add(-time.Hour)},
		{ID: "t2", Amount: -1, Kind: "spend", Description: "Application", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "t3", Amount: -1, Kind: "spend", Description: "Application", CreatedAt: now.Add(-3 * time.Hour)},
	}}
	backendtest.SignIn(t, fake)

	stdout, err := execCredits(t, "transactions", "--limit", "2")
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got:\n%s", stdout)
	}
	if !strings.Contains(lines[1], "+50") || !strings.Contains(lines[2], "-1") {
		t.Errorf("unexpected rows:\n%s", stdout)
	}
}

func TestTransactions_Empty(t *testing.T) {
	backendtest.SignIn(t, &backendtest.Fake{})

	stdout, err := execCredits(t, "transactions")
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if !strings.Contains(stdout, "No transactions yet.") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestPurchase(t *testing.T) {
	fake := &backendtest.Fake{Credit: domain.CreditBalance{Balance: 5}}
	backendtest.SignIn(t, fake)

	stdout, err := execCredits(t, "purchase", "standard")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if diff := cmp.Diff(domain.Purchase{PackageID: "standard", Credits: 50}, fake.LastPurchase); diff != "" {
		t.Errorf("purchase mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stdout, "Balance: 55") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestPurchase_UnknownPackage(t *testing.T) {
	fake := &backendtest.Fake{}
	backendtest.SignIn(t, fake)

	_, err := execCredits(t, "purchase", "mega")
	if err == nil || !strings.Contains(err.Error(), "unknown package") {
		t.Fatalf("expected unknown package, got %v", err)
	}
	if len(fake.Calls()) != 0 {
		t.Errorf("unexpected calls: %v", fake.Calls())
	}
}

func TestPurchase_InsufficientCreditsHint(t *testing.T) {
	backendtest.SignIn(t, &backendtest.Fake{Err: domain.ErrInsufficientCredits})

	_, err := execCredits(t, "purchase", "starter")
	if err == nil || !strings.Contains(err.Error(), "hirectl credits purchase") {
		t.Fatalf("expected hint, got %v", err)
	}
}
