package domain

import "time"

// ServiceName identifies this service in the root status payload.
const ServiceName = "api"

// SlowDelay is the artificial latency injected by GET /simulate/slow.
const SlowDelay = 400 * time.Millisecond

// ServiceStatus is the payload served by GET /.
type ServiceStatus struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// Health is the payload served by GET /healthz.
type Health struct {
	OK bool `json:"ok"`
}

// Liveness is the payload served by GET /livez.
type Liveness struct {
	Alive bool `json:"alive"`
}

// Readiness is the payload served by GET /readyz.
type Readiness struct {
	Ready bool `json:"ready"`
}

// SlowResult is the payload served by GET /simulate/slow once the delay elapses.
type SlowResult struct {
	OK      bool  `json:"ok"`
	DelayMS int64 `json:"delay_ms"`
}
