// Package config handles runtime settings for the adboard service:
// development defaults overlaid with ADBOARD_* environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment names recognized in ADBOARD_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds runtime settings for the adboard API server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty DSN selects the in-memory store.
//   - SessionSecret: HMAC secret for signing session tokens (HS256).
//   - Environment: "development" or "production"; production turns on the
//     Secure flag of the session cookie.
//   - RateBurst / RatePerSecond: per-IP request rate limits.
type Config struct {
	Addr          string
	DatabaseDSN   string
	SessionSecret string
	Environment   string
	RateBurst     int
	RatePerSecond int
}

// LoadDefaults populates Config with development defaults.
// NOTE: the session secret default is insecure and must be overridden in prod.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDSN = ""
	c.SessionSecret = "dev-session-secret"
	c.Environment = EnvDevelopment
	c.RateBurst = 20
	c.RatePerSecond = 10
}

// Load builds a Config by applying defaults and overlaying values from the
// environment.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.applyEnv()
	return cfg
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), EnvProduction)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ADBOARD_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("ADBOARD_PG_DSN"); v != "" {
		c.DatabaseDSN = v
	}
	if v := os.Getenv("ADBOARD_SESSION_SECRET"); v != "" {
		c.SessionSecret = v
	}
	if v := os.Getenv("ADBOARD_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("ADBOARD_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("ADBOARD_RATE_PER_SECOND"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RatePerSecond = n
		}
	}
}
