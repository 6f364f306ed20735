package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ricirt/infra-simulation-api/internal/buildinfo"
)

func serve(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthHandler_ConstantBodies(t *testing.T) {
	hh := NewHealthHandler()

	tests := []struct {
		name string
		h    http.HandlerFunc
		want string
	}{
		{"root", hh.Root, `{"service":"api","status":"ok"}`},
		{"healthz", hh.Healthz, `{"ok":true}`},
		{"livez", hh.Livez, `{"alive":true}`},
		{"readyz", hh.Readyz, `{"ready":true}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(tc.h, "/")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.want, rec.Body.String())
		})
	}
}

func TestVersionHandler_ReadsEnvironmentPerRequest(t *testing.T) {
	env := buildinfo.StaticEnvironment{}
	vh := NewVersionHandler(env)

	rec := serve(vh.Version, "/version")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"version":"0.1.0","commit":"dev"}`+"\n", rec.Body.String())

	env["APP_VERSION"] = "1.2.3"
	env["GIT_SHA"] = "abc123"

	rec = serve(vh.Version, "/version")
	assert.Equal(t, `{"version":"1.2.3","commit":"abc123"}`+"\n", rec.Body.String())

	env["APP_VERSION"] = ""
	env["GIT_SHA"] = ""

	rec = serve(vh.Version, "/version")
	assert.Equal(t, `{"version":"","commit":""}`+"\n", rec.Body.String())
}

func TestSimulateHandler_Slow(t *testing.T) {
	sh := NewSimulateHandler()

	start := time.Now()
	rec := serve(sh.Slow, "/simulate/slow")
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 400*time.Millisecond)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"ok":true,"delay_ms":400}`+"\n", rec.Body.String())
}

func TestSimulateHandler_ClientGone(t *testing.T) {
	sh := &SimulateHandler{delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/simulate/slow", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		sh.Slow(rec, req)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Slow did not return after the request context was cancelled")
	}
	assert.Empty(t, rec.Body.String())
}
