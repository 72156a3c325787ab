package api

import (
	"context"
	"fmt"
	"net/url"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// DashboardSummary returns the headline metrics for the given role's
// dashboard.
func (c *Client) DashboardSummary(ctx context.Context, role domain.Role) (*domain.DashboardSummary, error) {
	v := url.Values{}
	if role != "" {
		v.Set("role", string(role))
	}
	var s domain.DashboardSummary
	if err := c.getJSON(ctx, "/dashboard/summary", v, &s); err != nil {
		return nil, fmt.Errorf("get dashboard summary: %w", err)
	}
	return &s, nil
}

// OnboardingStatus reports the profile wizard progress.
func (c *Client) OnboardingStatus(ctx context.Context) (*domain.OnboardingStatus, error) {
	var s domain.OnboardingStatus
	if err := c.getJSON(ctx, "/onboarding/status", nil, &s); err != nil {
		return nil, fmt.Errorf("get onboarding status: %w", err)
	}
	return &s, nil
}
