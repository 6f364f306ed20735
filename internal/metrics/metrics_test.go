package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricirt/infra-simulation-api/internal/metrics"
)

func TestRequestHook_CountsByRouteAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	observe := m.RequestHook()

	observe("GET", "/healthz", 200, 2*time.Millisecond)
	observe("GET", "/healthz", 200, 3*time.Millisecond)
	observe("POST", "/healthz", 405, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/healthz", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/healthz", "405")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestSetBuildInfo(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.SetBuildInfo("1.2.3", "abc123")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildInfo.WithLabelValues("1.2.3", "abc123")))
}

func TestRegisterRuntime(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.RegisterRuntime(reg)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["go_goroutines"])
}
