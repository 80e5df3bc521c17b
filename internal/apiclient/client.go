package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/openautomate/website/internal/config"
	"github.com/openautomate/website/internal/logger"
)

var Module = fx.Module("apiclient",
	fx.Provide(NewFromConfig),
)

// Client performs single best-effort JSON requests against the backend API.
// It never retries.
type Client struct {
	baseURL string
	headers map[string]string
	http    *resty.Client
	log     *zap.Logger
}

type Option func(*Client)

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// New creates a client rooted at baseURL.
func New(baseURL string, log *zap.Logger, opts ...Option) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		http: resty.New(),
		log:  log.With(logger.Scope("apiclient")),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.http.SetRetryCount(0)

	return c
}

// NewFromConfig creates the client for the configured API backend.
func NewFromConfig(cfg *config.Config, log *zap.Logger) *Client {
	return New(cfg.APIURL, log, WithTimeout(cfg.APITimeout))
}

// URL resolves endpoint against the base URL. Absolute endpoints are
// returned unchanged.
func (c *Client) URL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http") {
		return endpoint
	}
	return c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
}

type requestOptions struct {
	headers map[string]string
}

type RequestOption func(*requestOptions)

// WithRequestHeader sets a header for a single request, overriding the
// client defaults.
func WithRequestHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers[key] = value
	}
}

// Do sends one request. A non-nil body is JSON encoded. On a 2xx response
// the body is decoded into out unless out is nil or the status is 204.
// Failures are returned as *APIError, except context cancellation which is
// returned as the context's error.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any, opts ...RequestOption) error {
	ro := requestOptions{headers: make(map[string]string, len(c.headers))}
	for k, v := range c.headers {
		ro.headers[k] = v
	}
	for _, opt := range opts {
		opt(&ro)
	}

	url := c.URL(endpoint)
	req := c.http.R().
		SetContext(ctx).
		SetHeaders(ro.headers)

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		req.SetBody(payload)
	}

	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("url", url))

	resp, err := req.Execute(method, url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.Warn("api request failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Error(err))
		return newNetworkError(err)
	}

	if !resp.IsSuccess() {
		apiErr := newResponseError(resp.StatusCode(), resp.Body())
		c.log.Debug("api request returned error status",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", apiErr.Status),
			zap.String("details", apiErr.Details))
		return apiErr
	}

	if out == nil || resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}

// Get fetches endpoint and decodes the response into T. A 204 response
// yields the zero value of T.
func Get[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodGet, endpoint, nil, &out, opts...)
	return out, err
}

// Post sends data as JSON and decodes the response into T.
func Post[T any](ctx context.Context, c *Client, endpoint string, data any, opts ...RequestOption) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodPost, endpoint, data, &out, opts...)
	return out, err
}

// Put sends data as JSON and decodes the response into T.
func Put[T any](ctx context.Context, c *Client, endpoint string, data any, opts ...RequestOption) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodPut, endpoint, data, &out, opts...)
	return out, err
}

// Patch sends data as JSON and decodes the response into T.
func Patch[T any](ctx context.Context, c *Client, endpoint string, data any, opts ...RequestOption) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodPatch, endpoint, data, &out, opts...)
	return out, err
}

// Delete removes endpoint and decodes the response into T.
func Delete[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodDelete, endpoint, nil, &out, opts...)
	return out, err
}
