package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, cfg *Config) (*Limiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewLimiter(cfg)
	l.now = clock.Now
	t.Cleanup(l.Stop)
	return l, clock
}

func TestBucket_TakeAndRefill(t *testing.T) {
	start := time.Now()
	b := newBucket(3, 1.0, start)

	for i := 0; i < 3; i++ {
		allowed, remaining, _ := b.take(start)
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, _, reset := b.take(start)
	assert.False(t, allowed)
	assert.Equal(t, start.Add(3*time.Second), reset)

	allowed, _, _ = b.take(start.Add(1100 * time.Millisecond))
	assert.True(t, allowed, "one token refills per second")
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", "/resumes/abc", "DELETE")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("127.0.0.1", "/resumes/abc", "DELETE")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 6*time.Second, info.RetryAfter)

	allowed, _ = l.Allow("10.0.0.2", "/resumes/abc", "DELETE")
	assert.True(t, allowed, "clients have separate buckets")
}

func TestLimiter_ParseEndpoint(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(12, time.Minute),
	})

	// Burst is a sixth of the limit.
	for i := 0; i < 2; i++ {
		allowed, info := l.Allow("127.0.0.1", "/resumes/parse", "POST")
		require.True(t, allowed)
		assert.Equal(t, 12, info.Limit)
	}
	allowed, _ := l.Allow("127.0.0.1", "/resumes/parse", "POST")
	assert.False(t, allowed)

	clock.Advance(5 * time.Second)
	allowed, _ = l.Allow("127.0.0.1", "/resumes/parse", "POST")
	assert.True(t, allowed)

	allowed, info := l.Allow("127.0.0.1", "/resumes/0b5c", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 300, info.Limit)
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("127.0.0.1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Lists(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.9": true},
	})

	for i := 0; i < 20; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/resumes/parse", "POST")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("10.0.0.9", "/health", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: false, DefaultLimit: 1, DefaultWindow: time.Minute})

	for i := 0; i < 20; i++ {
		allowed, _ := l.Allow("127.0.0.1", "/resumes/parse", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 50, DefaultWindow: time.Hour})

	var allowedCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("127.0.0.1", "/x", "GET"); ok {
				allowedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(50), allowedCount.Load())
}

func TestLimiter_Sweep(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   time.Minute,
	})

	for i := 0; i < 3; i++ {
		l.Allow(fmt.Sprintf("10.0.0.%d", i), "/x", "GET")
	}
	clock.Advance(30 * time.Second)
	l.Allow("10.0.0.0", "/x", "GET")
	clock.Advance(45 * time.Second)

	assert.Equal(t, 2, l.sweep())
	assert.Len(t, l.buckets, 1)
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(nil)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs(30, time.Minute)

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{"exact parse", "/resumes/parse", "POST", 30, false},
		{"prefix lookup", "/resumes/123", "GET", 300, false},
		{"health", "/health", "GET", 0, false},
		{"method mismatch", "/resumes/parse", "GET", 300, false},
		{"no match", "/other", "GET", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, cfg)
				return
			}
			require.NotNil(t, cfg)
			assert.Equal(t, tt.wantLimit, cfg.Limit)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "100")
	t.Setenv("RATE_LIMIT_PARSE_LIMIT", "6")
	t.Setenv("RATE_LIMIT_PARSE_WINDOW", "1h")
	t.Setenv("RATE_LIMIT_WHITELIST", " 10.0.0.1 , ,10.0.0.2")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 100, cfg.DefaultLimit)
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true}, cfg.Whitelist)
	parse := MatchEndpoint("/resumes/parse", "POST", cfg.EndpointConfigs)
	require.NotNil(t, parse)
	assert.Equal(t, 6, parse.Limit)
	assert.Equal(t, time.Hour, parse.Window)
	assert.Equal(t, 1, parse.Burst)

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
