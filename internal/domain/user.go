package domain

import (
	"strings"
	"time"
)

// Role is the account type returned by the backend.
type Role string

const (
	RoleTalent   Role = "talent"
	RoleEmployer Role = "employer"
)

// ParseRole maps the role spellings used by the backend onto a Role.
// Unknown values map to the empty Role.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "talent", "candidate", "freelancer":
		return RoleTalent
	case "employer", "team", "recruiter", "company":
		return RoleEmployer
	}
	return ""
}

// User is the authenticated account.
type User struct {
	ID        string    `json:"id" mapstructure:"id"`
	Email     string    `json:"email" mapstructure:"email"`
	FirstName string    `json:"firstName" mapstructure:"firstName"`
	LastName  string    `json:"lastName" mapstructure:"lastName"`
	Role      Role      `json:"role" mapstructure:"role"`
	CreatedAt time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// DisplayName returns "First Last", falling back to the email address.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// Session is the result of a successful login or registration.
type Session struct {
	Token        string `json:"token" mapstructure:"token"`
	RefreshToken string `json:"refreshToken" mapstructure:"refreshToken"`
	User         User   `json:"user" mapstructure:"user"`
}

// Credentials are submitted on login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is submitted when creating an account.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
	Company   string `json:"companyName,omitempty"`
}

// OnboardingStatus reports whether the user finished the profile wizard.
type OnboardingStatus struct {
	HasCompletedOnboarding bool     `json:"hasCompletedOnboarding" mapstructure:"hasCompletedOnboarding"`
	CompletionPercent      int      `json:"completionPercent" mapstructure:"completionPercent"`
	MissingSteps           []string `json:"missingSteps,omitempty" mapstructure:"missingSteps"`
}
