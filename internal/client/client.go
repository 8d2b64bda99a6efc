// Package client implements the typed HTTP client for the remote blog API.
// It wraps the four REST operations (list, create, update, delete), encodes
// multipart payloads, and translates every transport failure into a uniform
// *TransportError. The client holds no blog state; caching is the concern of
// the cache package.
package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"blogdesk/internal/domain/entity"
	"blogdesk/internal/observability/metrics"
	"blogdesk/internal/observability/tracing"
	"blogdesk/internal/resilience/circuitbreaker"
	"blogdesk/internal/resilience/retry"
)

// maxErrorBodySize caps how much of an error response body is read when
// deriving a failure message.
const maxErrorBodySize = 4096

// Config holds the configuration for the blog API client.
type Config struct {
	// BaseURL is the blog API base path, e.g. "http://localhost:5000/api/blogs".
	BaseURL string

	// Timeout is the per-request timeout.
	// Default: 30s
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// RequestsPerSecond is the sustained request rate toward the API.
	// Default: 5
	RequestsPerSecond float64

	// Burst is the token bucket burst capacity.
	// Default: 10
	Burst int
}

// DefaultConfig returns a client configuration with sane defaults.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:           baseURL,
		Timeout:           30 * time.Second,
		UserAgent:         "blogdesk/1.0",
		RequestsPerSecond: 5,
		Burst:             10,
	}
}

// Client is a stateless, typed wrapper over the blog REST API.
//
// Every call is paced by a token bucket, guarded by a circuit breaker, traced,
// and recorded in Prometheus metrics. Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

// New creates a blog API client from the given configuration.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
		breaker:   circuitbreaker.New(circuitbreaker.BlogAPIConfig()),
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}
}

// listResponse is the wire shape of GET {base}.
type listResponse struct {
	Blogs []entity.Blog `json:"blogs"`
}

// List fetches all persisted blogs.
// On failure the caller must not assume partial results; the returned slice
// is nil whenever the error is non-nil.
func (c *Client) List(ctx context.Context) ([]entity.Blog, error) {
	var out listResponse
	err := c.do(ctx, "list", http.MethodGet, c.baseURL, nil, "", fallbackList, &out)
	if err != nil {
		return nil, err
	}
	return out.Blogs, nil
}

// Create submits a new blog as a multipart payload and returns the persisted
// entity with its server-assigned ID and timestamps.
func (c *Client) Create(ctx context.Context, p *Payload) (entity.Blog, error) {
	body, contentType, err := p.Encode()
	if err != nil {
		return entity.Blog{}, &TransportError{Op: "create", Message: fallbackCreate, Err: err}
	}
	metrics.RecordPayloadSize("create", body.Len())

	var created entity.Blog
	if err := c.do(ctx, "create", http.MethodPost, c.baseURL+"/create", body, contentType, fallbackCreate, &created); err != nil {
		return entity.Blog{}, err
	}
	return created, nil
}

// Update submits the full payload for an existing blog. A non-existent id is
// a server-reported failure, not a client-side precondition check.
func (c *Client) Update(ctx context.Context, id string, p *Payload) (entity.Blog, error) {
	body, contentType, err := p.Encode()
	if err != nil {
		return entity.Blog{}, &TransportError{Op: "update", Message: fallbackUpdate, Err: err}
	}
	metrics.RecordPayloadSize("update", body.Len())

	var updated entity.Blog
	if err := c.do(ctx, "update", http.MethodPut, c.baseURL+"/update/"+id, body, contentType, fallbackUpdate, &updated); err != nil {
		return entity.Blog{}, err
	}
	return updated, nil
}

// Delete removes a blog by id. Whether deleting an already-missing id
// succeeds is server-defined; callers must not rely on idempotency.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, c.baseURL+"/delete/"+id, nil, "", fallbackDelete, nil)
}

// do issues one request through the rate limiter and circuit breaker,
// decodes a JSON response into out (when out is non-nil), and normalizes
// every failure into a *TransportError.
func (c *Client) do(ctx context.Context, op, method, url string, body io.Reader, contentType, fallback string, out interface{}) error {
	ctx, span := tracing.GetTracer().Start(ctx, "blog."+op)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.url", url),
	)

	start := time.Now()
	err := c.doOnce(ctx, op, method, url, body, contentType, fallback, out)
	metrics.RecordAPIRequest(op, err == nil, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, op, method, url string, body io.Reader, contentType, fallback string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Op: op, Message: fallback, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &TransportError{Op: op, Message: fallback, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			msg := errorMessage(resp.Body, fallback)
			return nil, &TransportError{
				Op:         op,
				StatusCode: resp.StatusCode,
				Message:    msg,
				Err:        &retry.HTTPError{StatusCode: resp.StatusCode, Message: msg},
			}
		}
		if out == nil {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil, nil
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return raw, nil
	})
	if err != nil {
		if te := AsTransportError(err); te != nil {
			return te
		}
		return &TransportError{Op: op, Message: transportMessage(err, fallback), Err: err}
	}

	if out == nil {
		return nil
	}
	raw, _ := result.([]byte)
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Op: op, Message: fallback, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorMessage derives a human-readable message from an error response body.
// It understands the API's JSON error envelope and falls back to the raw body
// text, then to the generic per-operation message.
func errorMessage(body io.Reader, fallback string) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return fallback
	}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
		return text
	}
	return fallback
}

// transportMessage extracts a usable message from a low-level transport error.
func transportMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
