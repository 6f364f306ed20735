package domain

import "errors"

// Sentinel errors used by the load generator.
// The HTTP handlers themselves have no failure paths.
var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrUnknownTarget    = errors.New("target is not registered with the limiter")
	ErrInvalidRate      = errors.New("rate must not be negative")
	ErrNoTargets        = errors.New("at least one target is required")
	ErrInvalidTarget    = errors.New("target must be an absolute path starting with /")
	ErrInvalidWorkers   = errors.New("workers must be at least 1")
	ErrUnboundedPlan    = errors.New("either a duration or a request count is required")
)
