package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// GetTalentProfile returns the current talent's profile.
func (c *Client) GetTalentProfile(ctx context.Context) (*domain.TalentProfile, error) {
	var p domain.TalentProfile
	if err := c.getJSON(ctx, "/profile/talent", nil, &p); err != nil {
		return nil, fmt.Errorf("get talent profile: %w", err)
	}
	return &p, nil
}

// UpdateTalentProfile patches the current talent's profile.
func (c *Client) UpdateTalentProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.TalentProfile, error) {
	var p domain.TalentProfile
	if err := c.sendJSON(ctx, http.MethodPatch, "/profile/talent", in, &p); err != nil {
		return nil, fmt.Errorf("update talent profile: %w", err)
	}
	return &p, nil
}

// GetEmployerProfile returns the current employer's company profile.
func (c *Client) GetEmployerProfile(ctx context.Context) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	if err := c.getJSON(ctx, "/profile/employer", nil, &p); err != nil {
		return nil, fmt.Errorf("get employer profile: %w", err)
	}
	return &p, nil
}

// UpdateEmployerProfile patches the current employer's company profile.
func (c *Client) UpdateEmployerProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	if err := c.sendJSON(ctx, http.MethodPatch, "/profile/employer", in, &p); err != nil {
		return nil, fmt.Errorf("update employer profile: %w", err)
	}
	return &p, nil
}

// UploadPicture replaces the profile picture (talent) or logo (employer)
// and returns the new URL.
func (c *Client) UploadPicture(ctx context.Context, filename string, r io.Reader) (string, error) {
	body, err := multipartPayload("picture", filename, r, nil)
	if err != nil {
		return "", err
	}
	var out struct {
		URL string `mapstructure:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/profile/picture", nil, body, &out); err != nil {
		return "", fmt.Errorf("upload picture: %w", err)
	}
	return out.URL, nil
}
