// Package providers holds the clients for the remote balance sources and the
// price oracle, plus the ledger export parser.
package providers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"cryptofolio/internal/models"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultHTTPTimeout = 15 * time.Second
	maxResponseBytes   = 4 << 20
)

// headerTransport sets fixed headers on every outgoing request unless the
// caller already set them.
type headerTransport struct {
	headers map[string]string
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	for key, value := range t.headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}

	return t.base.RoundTrip(req)
}

func newHTTPClient(base http.RoundTripper, timeout time.Duration, headers map[string]string) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &http.Client{
		Transport: &headerTransport{headers: headers, base: base},
		Timeout:   timeout,
	}
}

// newLimiter paces outbound calls. A non-positive rate disables pacing.
func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(perSecond), int(math.Ceil(perSecond)))
}

// apiClient is the request plumbing shared by the remote adapters.
type apiClient struct {
	provider models.Provider
	baseURL  string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

func (c *apiClient) buildRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do waits for the rate limiter, sends the request and reads the whole body.
// Transport failures come back as ProviderError of kind ErrRemoteUnavailable.
func (c *apiClient) do(req *http.Request) (*http.Response, []byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, nil, c.unavailable(0, "rate limiter", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorContext(req.Context(), "provider request failed",
			slog.String("provider", c.provider.String()),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return nil, nil, c.unavailable(0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, c.unavailable(resp.StatusCode, "read response body", err)
	}

	return resp, body, nil
}

func (c *apiClient) unavailable(status int, message string, err error) error {
	return &models.ProviderError{
		Provider:   c.provider,
		StatusCode: status,
		Message:    message,
		Kind:       models.ErrRemoteUnavailable,
		Original:   err,
	}
}

func (c *apiClient) failure(kind error, status int, body []byte) error {
	c.logger.Warn("provider returned error status",
		slog.String("provider", c.provider.String()),
		slog.Int("status", status),
	)

	return &models.ProviderError{
		Provider:   c.provider,
		StatusCode: status,
		Message:    truncate(string(body), 256),
		Kind:       kind,
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
