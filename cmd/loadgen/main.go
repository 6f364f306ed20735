// Command loadgen drives paced GET traffic at a running instance of the
// service and prints a per-route latency table when the run ends.
//
//	loadgen --url http://localhost:8080 --targets /healthz,/simulate/slow --workers 8 --rate 20 --duration 30s
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ricirt/infra-simulation-api/internal/loadgen"
	"github.com/ricirt/infra-simulation-api/internal/ratelimiter"
)

// options is everything the command line controls.
type options struct {
	baseURL string
	timeout time.Duration
	rate    int
	verbose bool
	plan    loadgen.Plan
}

func main() {
	var opts options
	pflag.StringVarP(&opts.baseURL, "url", "u", "http://localhost:8080", "base URL of the service")
	pflag.StringSliceVarP(&opts.plan.Targets, "targets", "t", []string{"/healthz", "/simulate/slow"}, "comma-separated routes to request")
	pflag.IntVarP(&opts.plan.Workers, "workers", "w", 4, "number of concurrent workers")
	pflag.IntVarP(&opts.rate, "rate", "r", 0, "max requests per second per target (0 = unlimited)")
	pflag.DurationVarP(&opts.plan.Duration, "duration", "d", 10*time.Second, "how long to run (0 = until --requests)")
	pflag.IntVarP(&opts.plan.Requests, "requests", "n", 0, "total requests to issue (0 = until --duration)")
	pflag.DurationVar(&opts.timeout, "timeout", 5*time.Second, "per-request timeout")
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "log individual request failures")
	pflag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "loadgen: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	zcfg := zap.NewProductionConfig()
	if opts.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := opts.plan.Validate(); err != nil {
		return err
	}

	limiters, err := ratelimiter.New(opts.plan.Targets, opts.rate)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats := loadgen.NewStats()
	pool := loadgen.NewPool(loadgen.NewClient(opts.baseURL, opts.timeout), limiters, stats, logger)
	if err := pool.Run(ctx, opts.plan); err != nil {
		return err
	}

	stats.Render(os.Stdout)
	return nil
}
