package campaign

import (
	"context"
	"sort"
	"sync"
	"time"

	"adboard.org/internal/ids"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store used for development runs without a
// database and for tests.
type MemoryStore struct {
	mu            sync.RWMutex
	campaigns     []Campaign
	notifications []Notification
	reports       []Report
	resources     []Resource
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Campaigns(ctx context.Context) CampaignStore { return (*memoryCampaigns)(m) }
func (m *MemoryStore) Reports(ctx context.Context) ReportStore     { return (*memoryReports)(m) }
func (m *MemoryStore) Resources(ctx context.Context) ResourceStore { return (*memoryResources)(m) }

func (m *MemoryStore) Notifications(ctx context.Context) NotificationStore {
	return (*memoryNotifications)(m)
}

type memoryCampaigns MemoryStore

func (m *memoryCampaigns) Create(ctx context.Context, c *Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = ids.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	m.campaigns = append(m.campaigns, *c)
	return nil
}

func (m *memoryCampaigns) ListForCompany(ctx context.Context, companyID string) ([]Campaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Campaign
	if companyID == "" {
		return out, nil
	}
	for _, c := range m.campaigns {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memoryNotifications MemoryStore

func (m *memoryNotifications) Create(ctx context.Context, n *Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n.ID == "" {
		n.ID = ids.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *memoryNotifications) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryNotifications) CountUnread(ctx context.Context, userID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *memoryNotifications) MarkRead(ctx context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].ID == id && m.notifications[i].UserID == userID {
			m.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

type memoryReports MemoryStore

func (m *memoryReports) Create(ctx context.Context, r *Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = ids.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	m.reports = append(m.reports, *r)
	return nil
}

func (m *memoryReports) ListForUser(ctx context.Context, userID string) ([]Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Report
	for _, r := range m.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type memoryResources MemoryStore

func (m *memoryResources) Create(ctx context.Context, r *Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = ids.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	m.resources = append(m.resources, *r)
	return nil
}

func (m *memoryResources) List(ctx context.Context, category string) ([]Resource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := category == "" || category == AllCategories
	var out []Resource
	for _, r := range m.resources {
		if all || r.Category == category {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
