package loadgen

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ricirt/infra-simulation-api/internal/domain"
	"github.com/ricirt/infra-simulation-api/internal/ratelimiter"
)

// Plan describes one load run. Targets are visited round-robin across all
// workers. The run ends when Duration elapses or Requests have been issued,
// whichever comes first; a zero value disables that bound.
type Plan struct {
	Targets  []string
	Workers  int
	Duration time.Duration
	Requests int
}

func (p Plan) Validate() error {
	if len(p.Targets) == 0 {
		return domain.ErrNoTargets
	}
	for _, t := range p.Targets {
		if !strings.HasPrefix(t, "/") {
			return domain.ErrInvalidTarget
		}
	}
	if p.Workers < 1 {
		return domain.ErrInvalidWorkers
	}
	if p.Duration <= 0 && p.Requests <= 0 {
		return domain.ErrUnboundedPlan
	}
	return nil
}

// Pool drives a Plan with a fixed set of concurrent workers.
type Pool struct {
	client   *Client
	limiters *ratelimiter.TargetLimiters
	stats    *Stats
	logger   *zap.Logger
}

func NewPool(
	client *Client,
	limiters *ratelimiter.TargetLimiters,
	stats *Stats,
	logger *zap.Logger,
) *Pool {
	return &Pool{client: client, limiters: limiters, stats: stats, logger: logger}
}

// Run blocks until the plan completes or ctx is cancelled. Cancellation is
// a normal way to end a run and is not reported as an error.
func (p *Pool) Run(ctx context.Context, plan Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	if plan.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, plan.Duration)
		defer cancel()
	}

	var issued atomic.Int64
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < plan.Workers; i++ {
		logger := p.logger.With(zap.Int("worker_id", i))
		g.Go(func() error {
			return p.work(gctx, plan, &issued, logger)
		})
	}

	p.logger.Info("load run started",
		zap.Strings("targets", plan.Targets),
		zap.Int("workers", plan.Workers),
		zap.Duration("duration", plan.Duration),
		zap.Int("requests", plan.Requests),
	)

	err := g.Wait()
	p.logger.Info("load run finished", zap.Error(err))
	return err
}

func (p *Pool) work(ctx context.Context, plan Plan, issued *atomic.Int64, logger *zap.Logger) error {
	logger.Debug("worker started")
	defer logger.Debug("worker stopped")

	for {
		n := issued.Add(1)
		if plan.Requests > 0 && n > int64(plan.Requests) {
			return nil
		}
		target := plan.Targets[(n-1)%int64(len(plan.Targets))]

		// The limiter also refuses early when the next token falls past
		// the run's deadline; that ends the run like cancellation does.
		if err := p.limiters.Wait(ctx, target); err != nil {
			if errors.Is(err, domain.ErrUnknownTarget) {
				return err
			}
			return nil
		}

		res := p.client.Get(ctx, target)
		if res.Err != nil && ctx.Err() != nil {
			// Cut off by the end of the run, not a failure of the target.
			return nil
		}
		if res.Err != nil {
			logger.Debug("request failed", zap.String("target", target), zap.Error(res.Err))
		}
		p.stats.Record(res)
	}
}
