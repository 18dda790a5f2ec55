package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_DefaultValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours, "should use default expiration of 24 hours")
	assert.Equal(t, 24*time.Hour, cfg.TTL())
}

func TestNewJWTConfig_Expiration(t *testing.T) {
	tests := []struct {
		name          string
		expiration    string
		expectedHours int
		wantErr       string
	}{
		{name: "custom", expiration: "48", expectedHours: 48},
		{name: "one hour", expiration: "1", expectedHours: 1},
		{name: "zero", expiration: "0", wantErr: "at least 1 hour"},
		{name: "negative", expiration: "-5", wantErr: "at least 1 hour"},
		{name: "over a month", expiration: "1000", wantErr: "at most 720 hours"},
		{name: "not a number", expiration: "abc", wantErr: "invalid JWT_EXPIRATION_HOURS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "secret")
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)

			cfg, err := NewJWTConfig()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHours, cfg.ExpirationHours)
		})
	}
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestOptionalJWTConfig(t *testing.T) {
	t.Run("unset secret disables auth", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		cfg, err := OptionalJWTConfig()
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("set secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "2")
		cfg, err := OptionalJWTConfig()
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, 2, cfg.ExpirationHours)
	})

	t.Run("bad expiration still fails", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "soon")
		_, err := OptionalJWTConfig()
		assert.Error(t, err)
	})
}
