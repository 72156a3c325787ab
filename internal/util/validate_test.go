package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateEmail_Valid(t *testing.T) {
	valid := []string{
		"ann@example.com",
		"first.last@sub.example.co.uk",
		"a+tag@x.io",
		" padded@example.com ",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			if err := ValidateEmail(s); err != nil {
				t.Errorf("expected %q to be valid, got error: %v", s, err)
			}
		})
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no at", "example.com"},
		{"display name", "Ann <ann@example.com>"},
		{"no domain dot", "ann@localhost"},
		{"spaces", "ann smith@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateEmail(tt.input); err == nil {
				t.Errorf("expected error for %q, got nil", tt.input)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"abc12345", false},
		{"longpassword1", false},
		{"short1", true},
		{"allletters", true},
		{"12345678", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSalaryRange(t *testing.T) {
	if err := ValidateSalaryRange(0, 0); err != nil {
		t.Errorf("unset range: %v", err)
	}
	if err := ValidateSalaryRange(50000, 0); err != nil {
		t.Errorf("open-ended range: %v", err)
	}
	if err := ValidateSalaryRange(90000, 60000); err == nil {
		t.Error("expected error for inverted range")
	}
	if err := ValidateSalaryRange(-1, 10); err == nil {
		t.Error("expected error for negative salary")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" Go, rust ,,go, SQL ")
	want := []string{"Go", "rust", "SQL"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitList mismatch (-want +got):\n%s", diff)
	}
	if got := SplitList(""); got != nil {
		t.Errorf("SplitList(\"\") = %v, want nil", got)
	}
}

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("  High-Contrast "); got != "high-contrast" {
		t.Errorf("NormalizeKey() = %q", got)
	}
}
