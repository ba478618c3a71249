package campaign

import "context"

// AllCategories is the wildcard category value sent by the dashboard's
// resource filter ("Todos" = all).
const AllCategories = "Todos"

// Store describes persistence operations for the dashboard data.
type Store interface {
	Campaigns(ctx context.Context) CampaignStore
	Notifications(ctx context.Context) NotificationStore
	Reports(ctx context.Context) ReportStore
	Resources(ctx context.Context) ResourceStore
}

// CampaignStore manages campaigns. Campaigns belong to a company; users see
// the campaigns of their own company only.
type CampaignStore interface {
	Create(ctx context.Context, c *Campaign) error
	ListForCompany(ctx context.Context, companyID string) ([]Campaign, error)
}

// NotificationStore manages per-user notifications, newest first.
type NotificationStore interface {
	Create(ctx context.Context, n *Notification) error
	ListForUser(ctx context.Context, userID string) ([]Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	// MarkRead flips the read flag of the caller's own notification;
	// an unknown id or someone else's notification yields ErrNotFound.
	MarkRead(ctx context.Context, id, userID string) error
}

// ReportStore manages per-user reports, newest first.
type ReportStore interface {
	Create(ctx context.Context, r *Report) error
	ListForUser(ctx context.Context, userID string) ([]Report, error)
}

// ResourceStore manages the shared resource library. An empty category or the
// literal "Todos" selects every resource.
type ResourceStore interface {
	Create(ctx context.Context, r *Resource) error
	List(ctx context.Context, category string) ([]Resource, error)
}
