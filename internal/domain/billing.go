package domain

import "time"

// CreditBalance is the account's current credit balance.
type CreditBalance struct {
	Balance   int       `json:"balance" mapstructure:"balance"`
	Currency  string    `json:"currency" mapstructure:"currency"`
	UpdatedAt time.Time `json:"updatedAt" mapstructure:"updatedAt"`
}

// CreditTransaction is a single ledger entry.
type CreditTransaction struct {
	ID          string    `json:"id" mapstructure:"id"`
	Amount      int       `json:"amount" mapstructure:"amount"`
	Kind        string    `json:"type" mapstructure:"type"`
	Description string    `json:"description" mapstructure:"description"`
	CreatedAt   time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// Purchase requests a credit top-up.
type Purchase struct {
	PackageID string `json:"packageId"`
	Credits   int    `json:"credits,omitempty"`
}

// Notification is an in-app notification.
type Notification struct {
	ID        string    `json:"id" mapstructure:"id"`
	Title     string    `json:"title" mapstructure:"title"`
	Body      string    `json:"message" mapstructure:"message"`
	Kind      string    `json:"type" mapstructure:"type"`
	Read      bool      `json:"read" mapstructure:"read"`
	CreatedAt time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// DashboardSummary holds the headline metrics for a dashboard.
type DashboardSummary struct {
	ActiveJobs        int       `json:"activeJobs" mapstructure:"activeJobs"`
	TotalApplicants   int       `json:"totalApplicants" mapstructure:"totalApplicants"`
	Applications      int       `json:"applications" mapstructure:"applications"`
	Interviews        int       `json:"interviews" mapstructure:"interviews"`
	ProfileViews      int       `json:"profileViews" mapstructure:"profileViews"`
	UnreadNotices     int       `json:"unreadNotifications" mapstructure:"unreadNotifications"`
	ApplicationsTrend []float64 `json:"applicationsTrend" mapstructure:"applicationsTrend"`
}
