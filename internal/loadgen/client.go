package loadgen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ricirt/infra-simulation-api/internal/domain"
)

// Result is the outcome of a single request against one target.
type Result struct {
	Target  string
	Status  int
	Latency time.Duration
	Err     error
}

// Client issues GET requests against routes of a running service.
// The base URL is injected so tests can point it at an httptest server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get requests target and measures the time until the body is fully read.
// Anything other than 200 OK is reported as ErrUnexpectedStatus.
func (c *Client) Get(ctx context.Context, target string) Result {
	res := Result{Target: target}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+target, nil)
	if err != nil {
		res.Err = fmt.Errorf("create request: %w", err)
		return res
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		res.Latency = time.Since(start)
		res.Err = fmt.Errorf("send request: %w", err)
		return res
	}
	defer resp.Body.Close()

	_, err = io.Copy(io.Discard, resp.Body)
	res.Latency = time.Since(start)
	res.Status = resp.StatusCode

	switch {
	case err != nil:
		res.Err = fmt.Errorf("read body: %w", err)
	case resp.StatusCode != http.StatusOK:
		res.Err = fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}
	return res
}
