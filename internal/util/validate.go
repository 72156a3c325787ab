package util

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// MinPasswordLength is the shortest password the backend accepts.
const MinPasswordLength = 8

// ValidateEmail checks that s is a bare address ("a@b.c"), rejecting
// display-name forms such as "Ann <a@b.c>".
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fmt.Errorf("email %q is not a valid address", s)
	}
	at := strings.LastIndex(s, "@")
	if !strings.Contains(s[at+1:], ".") {
		return fmt.Errorf("email %q must include a domain with a dot", s)
	}
	return nil
}

// ValidatePassword enforces the registration rules:
//   - At least MinPasswordLength characters
//   - At least one letter and one digit
func ValidatePassword(s string) error {
	if len(s) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters, got %d", MinPasswordLength, len(s))
	}
	var letter, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}
	return nil
}

// ValidateSalaryRange checks an optional salary band. Zero means unset.
func ValidateSalaryRange(lo, hi int) error {
	if lo < 0 || hi < 0 {
		return fmt.Errorf("salary must not be negative")
	}
	if lo > 0 && hi > 0 && lo > hi {
		return fmt.Errorf("salary minimum %d exceeds maximum %d", lo, hi)
	}
	return nil
}

// SplitList splits a comma-separated flag value into trimmed, non-empty
// items, keeping their order and dropping case-insensitive duplicates.
func SplitList(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		key := NormalizeKey(part)
		if part == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, part)
	}
	return out
}
