package campaign

import "time"

// Campaign statuses.
const (
	StatusActive = "active"
	StatusPaused = "paused"
	StatusEnded  = "ended"
)

// Campaign is a paid advertising campaign run on behalf of a company.
// Monetary amounts are in the account currency; counters are raw totals
// reported by the advertising platform.
type Campaign struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Platform    string    `json:"platform"`
	Budget      float64   `json:"budget"`
	Spent       float64   `json:"spent"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Notification is a per-user dashboard notification.
type Notification struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Report is a generated document available to a user.
type Report struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Format      string    `json:"format"`
	URL         string    `json:"url"`
	Size        string    `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Resource is a shared library item, visible to every authenticated user.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Format      string    `json:"format"`
	URL         string    `json:"url"`
	Size        string    `json:"size"`
	Category    string    `json:"category"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}
