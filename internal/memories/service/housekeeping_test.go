package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/memorylane/pkg/attempts"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweepsLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := attempts.NewMemoryLimiter(attempts.Config{Window: time.Minute}, attempts.WithClock(func() time.Time { return now }))

	ctx := context.Background()
	_, err := limiter.Hit(ctx, "a")
	require.NoError(t, err)
	_, err = limiter.Hit(ctx, "b")
	require.NoError(t, err)

	hk := NewHousekeepingService(slogx.Discard(), time.Hour, map[string]Sweeper{"login_attempts": limiter})
	require.Zero(t, hk.RunOnce(ctx))

	now = now.Add(time.Minute)
	require.Equal(t, 2, hk.RunOnce(ctx))
	require.Zero(t, limiter.Len())
}

func TestHousekeepingStartStop(t *testing.T) {
	hk := NewHousekeepingService(slogx.Discard(), 0, nil)
	require.Equal(t, 5*time.Minute, hk.Interval)

	hk.Start()
	hk.Stop()
}
