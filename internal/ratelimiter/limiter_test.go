package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricirt/infra-simulation-api/internal/domain"
	"github.com/ricirt/infra-simulation-api/internal/ratelimiter"
)

func TestNew_RejectsNegativeRate(t *testing.T) {
	_, err := ratelimiter.New([]string{"/healthz"}, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestWait_UnknownTarget(t *testing.T) {
	tl, err := ratelimiter.New([]string{"/healthz"}, 10)
	require.NoError(t, err)

	err = tl.Wait(context.Background(), "/livez")
	assert.ErrorIs(t, err, domain.ErrUnknownTarget)
}

func TestWait_ZeroRateIsUnlimited(t *testing.T) {
	tl, err := ratelimiter.New([]string{"/healthz"}, 0)
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 1000; i++ {
		require.NoError(t, tl.Wait(context.Background(), "/healthz"))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

// With burst == rate, the first second's worth of tokens is available
// immediately and the next one has to wait roughly 1/rate.
func TestWait_PacesBeyondBurst(t *testing.T) {
	tl, err := ratelimiter.New([]string{"/healthz"}, 10)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, tl.Wait(ctx, "/healthz"))
	}

	start := time.Now()
	require.NoError(t, tl.Wait(ctx, "/healthz"))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWait_TargetsAreIndependent(t *testing.T) {
	tl, err := ratelimiter.New([]string{"/a", "/b"}, 1)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, tl.Wait(ctx, "/a"))

	start := time.Now()
	require.NoError(t, tl.Wait(ctx, "/b"))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestWait_ContextCancelled(t *testing.T) {
	tl, err := ratelimiter.New([]string{"/healthz"}, 1)
	require.NoError(t, err)

	require.NoError(t, tl.Wait(context.Background(), "/healthz"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, tl.Wait(ctx, "/healthz"))
}
