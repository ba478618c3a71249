package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "adboard"

	// CookieName is the session cookie carried by every authenticated request.
	CookieName = "auth-token"

	// SessionTTL is the fixed absolute lifetime of a session credential.
	SessionTTL = 7 * 24 * time.Hour
)

// Jar abstracts the client-side storage of the session credential, so the
// issuer and resolver never touch HTTP types directly and tests can fake it.
type Jar interface {
	// Token returns the stored session credential, if any.
	Token() (string, bool)
	// SetToken stores a credential with its absolute expiry.
	SetToken(token string, expires time.Time)
	// ClearToken removes the credential.
	ClearToken()
}

// Sessions mints and verifies signed session credentials. The credential is a
// HS256 JWT binding a random nonce and expiry to the user id; holding a user
// id alone is not enough to forge a session.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// SessionOption configures Sessions.
type SessionOption func(*Sessions)

// WithSessionTTL overrides the default credential lifetime.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(s *Sessions) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSessionClock overrides the time source (useful for tests).
func WithSessionClock(fn func() time.Time) SessionOption {
	return func(s *Sessions) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewSessions constructs a session signer/verifier around a shared secret.
func NewSessions(secret string, opts ...SessionOption) (*Sessions, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("session secret is not configured")
	}
	s := &Sessions{
		secret: []byte(secret),
		ttl:    SessionTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Mint signs a fresh session credential for the given user.
func (s *Sessions) Mint(userID string) (string, time.Time, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", time.Time{}, errors.New("userID is required")
	}
	now := s.now().UTC()
	expires := now.Add(s.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Parse verifies a session credential and returns the bound user id.
// Every failure mode collapses to ErrInvalidToken.
func (s *Sessions) Parse(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Issuer != issuer {
		return "", ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return "", ErrInvalidToken
	}
	if s.now().UTC().After(claims.ExpiresAt.Time) {
		return "", ErrInvalidToken
	}
	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
