package state

import (
	"context"
	"fmt"
	"io"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// UserData is the current user's profile and onboarding progress.
type UserData struct {
	Talent     *domain.TalentProfile
	Employer   *domain.EmployerProfile
	Onboarding *domain.OnboardingStatus
	CVUpload   *domain.CVUpload
	ParsedCV   *domain.ParsedCV
}

// UserSlice tracks the profile of the signed-in user.
type UserSlice struct {
	base[UserData]
}

// LoadProfile fetches the profile for role.
func (u *UserSlice) LoadProfile(ctx context.Context, role domain.Role) error {
	switch role {
	case domain.RoleTalent:
		return run(ctx, &u.base, "profile", u.store.api.GetTalentProfile, func(d *UserData, p *domain.TalentProfile) {
			d.Talent = p
		})
	case domain.RoleEmployer:
		return run(ctx, &u.base, "profile", u.store.api.GetEmployerProfile, func(d *UserData, p *domain.EmployerProfile) {
			d.Employer = p
		})
	}
	return fmt.Errorf("load profile: unknown role %q: %w", role, domain.ErrValidation)
}

// UpdateProfile patches the profile for role.
func (u *UserSlice) UpdateProfile(ctx context.Context, role domain.Role, in domain.ProfileUpdate) error {
	switch role {
	case domain.RoleTalent:
		return run(ctx, &u.base, "update-profile", func(ctx context.Context) (*domain.TalentProfile, error) {
			return u.store.api.UpdateTalentProfile(ctx, in)
		}, func(d *UserData, p *domain.TalentProfile) {
			d.Talent = p
		})
	case domain.RoleEmployer:
		return run(ctx, &u.base, "update-profile", func(ctx context.Context) (*domain.EmployerProfile, error) {
			return u.store.api.UpdateEmployerProfile(ctx, in)
		}, func(d *UserData, p *domain.EmployerProfile) {
			d.Employer = p
		})
	}
	return fmt.Errorf("update profile: unknown role %q: %w", role, domain.ErrValidation)
}

// LoadOnboarding fetches the onboarding status.
func (u *UserSlice) LoadOnboarding(ctx context.Context) error {
	return run(ctx, &u.base, "onboarding", u.store.api.OnboardingStatus, func(d *UserData, s *domain.OnboardingStatus) {
		d.Onboarding = s
	})
}

// UploadCV sends a CV and records the upload handle.
func (u *UserSlice) UploadCV(ctx context.Context, filename string, r io.Reader) error {
	return run(ctx, &u.base, "cv-upload", func(ctx context.Context) (*domain.CVUpload, error) {
		return u.store.api.UploadCV(ctx, filename, r)
	}, func(d *UserData, up *domain.CVUpload) {
		d.CVUpload = up
		d.ParsedCV = nil
	})
}

// LoadParsedCV fetches the parser output for the last upload.
func (u *UserSlice) LoadParsedCV(ctx context.Context, uploadID string) error {
	return run(ctx, &u.base, "cv-parse", func(ctx context.Context) (*domain.ParsedCV, error) {
		return u.store.api.ParseCV(ctx, uploadID)
	}, func(d *UserData, p *domain.ParsedCV) {
		d.ParsedCV = p
	})
}

// ConfirmCV applies parsed CV data to the talent profile. Completing it
// also completes onboarding.
func (u *UserSlice) ConfirmCV(ctx context.Context, parsed domain.ParsedCV) error {
	return run(ctx, &u.base, "cv-confirm", func(ctx context.Context) (*domain.TalentProfile, error) {
		return u.store.api.ConfirmCV(ctx, parsed)
	}, func(d *UserData, p *domain.TalentProfile) {
		d.Talent = p
		d.CVUpload = nil
		d.ParsedCV = nil
		if d.Onboarding != nil {
			done := *d.Onboarding
			done.HasCompletedOnboarding = true
			done.CompletionPercent = 100
			done.MissingSteps = nil
			d.Onboarding = &done
		}
	})
}

// HasCompletedOnboarding reports the onboarding flag, false when unknown.
func (u *UserSlice) HasCompletedOnboarding() bool {
	o := u.Snapshot().Data.Onboarding
	return o != nil && o.HasCompletedOnboarding
}
