package ratelimiter

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/ricirt/infra-simulation-api/internal/domain"
)

// TargetLimiters holds one token bucket limiter per target route.
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum. A rate of 0 means unlimited.
type TargetLimiters struct {
	limiters map[string]*rate.Limiter
}

// New creates a TargetLimiters with ratePerSec tokens per second per target.
func New(targets []string, ratePerSec int) (*TargetLimiters, error) {
	if ratePerSec < 0 {
		return nil, domain.ErrInvalidRate
	}

	r, burst := rate.Limit(ratePerSec), ratePerSec
	if ratePerSec == 0 {
		r, burst = rate.Inf, 0
	}

	limiters := make(map[string]*rate.Limiter, len(targets))
	for _, t := range targets {
		limiters[t] = rate.NewLimiter(r, burst)
	}
	return &TargetLimiters{limiters: limiters}, nil
}

// Wait blocks until the target's limiter grants a token.
// Returns a non-nil error if ctx is cancelled while waiting or the target
// was not passed to New.
func (tl *TargetLimiters) Wait(ctx context.Context, target string) error {
	l, ok := tl.limiters[target]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownTarget, target)
	}
	return l.Wait(ctx)
}
