package state

import (
	"context"
	"time"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/swrcache"
)

const opPreview = "preview"

// AnalyticsData is the dashboard summary.
type AnalyticsData struct {
	Role    domain.Role
	Summary *domain.DashboardSummary
	// CachedAt is set while Summary is a cached copy shown during a
	// reload, and zero once fresh data is committed.
	CachedAt time.Time
}

// AnalyticsSlice tracks dashboard metrics.
type AnalyticsSlice struct {
	base[AnalyticsData]
}

// Load fetches the dashboard summary for role. With caching on, the last
// cached summary is shown immediately if the slice has none for role.
func (a *AnalyticsSlice) Load(ctx context.Context, role domain.Role) error {
	fetch := func(ctx context.Context) (*domain.DashboardSummary, error) {
		return a.store.api.DashboardSummary(ctx, role)
	}
	if c := a.store.userCache(); c != nil {
		key := summaryCacheKey(role)
		a.preview(c, key, role)
		uncached := fetch
		fetch = func(ctx context.Context) (*domain.DashboardSummary, error) {
			return swrcache.GetOrFetch(c, ctx, key, uncached)
		}
	}
	return run(ctx, &a.base, "summary", fetch, func(d *AnalyticsData, s *domain.DashboardSummary) {
		d.Role = role
		d.Summary = s
		d.CachedAt = time.Time{}
	})
}

func (a *AnalyticsSlice) preview(c *swrcache.Cache, key string, role domain.Role) {
	if cur := a.Snapshot().Data; cur.Summary != nil && cur.Role == role {
		return
	}
	cached, at, ok := swrcache.Peek[*domain.DashboardSummary](c, key)
	if !ok || cached == nil {
		return
	}
	a.set(opPreview, func(d *AnalyticsData) {
		d.Role = role
		d.Summary = cached
		d.CachedAt = at
	})
}

func summaryCacheKey(role domain.Role) string {
	return "dashboard-summary-" + string(role)
}
