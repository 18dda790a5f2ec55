package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultTokenHours = 24
	maxTokenHours     = 24 * 30
)

// JWTConfig holds the settings for validating bearer tokens on the upload API.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// TTL is the lifetime given to newly issued tokens.
func (c *JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

// NewJWTConfig reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS.
func NewJWTConfig() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		ExpirationHours: defaultTokenHours,
	}
	if cfg.Secret == "" {
		return nil, errors.New("JWT_SECRET is required but not set")
	}

	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q: %w", raw, err)
		}
		cfg.ExpirationHours = hours
	}

	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OptionalJWTConfig returns nil, nil when JWT_SECRET is unset so the
// server can run without authentication.
func OptionalJWTConfig() (*JWTConfig, error) {
	if os.Getenv("JWT_SECRET") == "" {
		return nil, nil
	}
	return NewJWTConfig()
}

func (c *JWTConfig) check() error {
	switch {
	case c.ExpirationHours < 1:
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got %d", c.ExpirationHours)
	case c.ExpirationHours > maxTokenHours:
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at most %d hours, got %d", maxTokenHours, c.ExpirationHours)
	}
	return nil
}
