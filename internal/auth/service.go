package auth

import (
	"context"
	"errors"
	"strings"
)

// Service implements login, logout and per-request identity resolution on top
// of a Store, a Sessions signer and a caller-provided cookie Jar.
type Service struct {
	store    Store
	sessions *Sessions
}

// NewService constructs the auth service.
func NewService(store Store, sessions *Sessions) *Service {
	return &Service{store: store, sessions: sessions}
}

// Sessions exposes the session signer, for callers that only need token
// verification.
func (s *Service) Sessions() *Sessions {
	return s.sessions
}

// Login verifies credentials, mints a session credential and stores it in the
// jar. Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, jar Jar, email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.store.Users(ctx).FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	token, expires, err := s.sessions.Mint(user.ID)
	if err != nil {
		return nil, err
	}
	jar.SetToken(token, expires)
	return user, nil
}

// Logout destroys the session credential. Clearing an absent credential is a
// no-op.
func (s *Service) Logout(jar Jar) {
	jar.ClearToken()
}

// CurrentUser resolves the identity carried by the jar. A missing, stale or
// forged credential yields (nil, nil), never an error; the method is
// idempotent and does not mutate any state.
func (s *Service) CurrentUser(ctx context.Context, jar Jar) (*User, error) {
	token, ok := jar.Token()
	if !ok {
		return nil, nil
	}
	userID, err := s.sessions.Parse(token)
	if err != nil {
		return nil, nil
	}
	user, err := s.store.Users(ctx).Find(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// RequireAuthenticated resolves the current user and fails with
// ErrUnauthenticated when there is none. Data handlers call this before
// touching any repository.
func (s *Service) RequireAuthenticated(ctx context.Context, jar Jar) (*User, error) {
	user, err := s.CurrentUser(ctx, jar)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
