package auth

import (
	"context"
	"strings"
	"sync"

	"adboard.org/internal/ids"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store used for development runs without a
// database and for tests.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[string]*User
	byEmail   map[string]string
	companies map[string]*Company
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]*User),
		byEmail:   make(map[string]string),
		companies: make(map[string]*Company),
	}
}

func (m *MemoryStore) Users(ctx context.Context) UserStore        { return (*memoryUsers)(m) }
func (m *MemoryStore) Companies(ctx context.Context) CompanyStore { return (*memoryCompanies)(m) }

type memoryUsers MemoryStore

func (m *memoryUsers) Create(ctx context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == "" {
		u.ID = ids.New()
	}
	email := strings.ToLower(strings.TrimSpace(u.Email))
	if _, exists := m.byEmail[email]; exists {
		return ErrAlreadyExists
	}
	clone := *u
	m.users[u.ID] = &clone
	m.byEmail[email] = u.ID
	return nil
}

func (m *memoryUsers) Find(ctx context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *memoryUsers) FindByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *m.users[id]
	return &clone, nil
}

type memoryCompanies MemoryStore

func (m *memoryCompanies) Create(ctx context.Context, c *Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = ids.New()
	}
	clone := *c
	m.companies[c.ID] = &clone
	return nil
}

func (m *memoryCompanies) Find(ctx context.Context, id string) (*Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *c
	return &clone, nil
}
