package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLocalLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4:/auth/login")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "1.2.3.4:/auth/login")
	assert.False(t, ok, "third request within the window is throttled")

	ok, _ = l.Allow(ctx, "5.6.7.8:/auth/login")
	assert.True(t, ok, "keys are independent")

	now = now.Add(30 * time.Second)
	ok, _ = l.Allow(ctx, "1.2.3.4:/auth/login")
	assert.True(t, ok, "one token refills every window/limit")
}

func TestLocalLimiterEvictsIdleKeys(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLocalLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(context.Background(), "a")
	now = now.Add(3 * time.Minute)
	_, _ = l.Allow(context.Background(), "b")

	assert.NotContains(t, l.entries, "a")
	assert.Contains(t, l.entries, "b")
}

func TestRedisLimiterWindowKey(t *testing.T) {
	l := NewRedisLimiter(nil, 10, time.Minute)
	l.now = func() time.Time { return time.Unix(120, 0) }
	assert.Equal(t, "ratelimit:ip:2", l.windowKey("ip"))

	l.now = func() time.Time { return time.Unix(179, 0) }
	assert.Equal(t, "ratelimit:ip:2", l.windowKey("ip"))

	l.now = func() time.Time { return time.Unix(180, 0) }
	assert.Equal(t, "ratelimit:ip:3", l.windowKey("ip"))
}

func TestLimitersClampNonPositiveBudget(t *testing.T) {
	for _, limit := range []int{0, -4} {
		r := NewRedisLimiter(nil, limit, time.Minute)
		assert.EqualValues(t, 1, r.limit)

		l := NewLocalLimiter(limit, time.Minute)
		ok, err := l.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, ok, "first request passes with limit %d", limit)
	}
}

func TestUnlimited(t *testing.T) {
	ok, err := Unlimited{}.Allow(context.Background(), "any")
	require.NoError(t, err)
	assert.True(t, ok)
}
