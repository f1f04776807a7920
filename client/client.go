package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bodrovis/oaix/apierr"
)

// instrumentationName is used for the OpenTelemetry tracer.
const instrumentationName = "github.com/bodrovis/oaix/client"

// Client performs one HTTP exchange per Request against BaseURL.
//
// Default headers are published as immutable snapshots: every request copies
// the current snapshot when it is built, so SetHeader/DelHeader only affect
// requests issued afterwards. A Client is safe for concurrent use.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Method     string // default request method

	headers atomic.Pointer[Headers]
	mu      sync.Mutex // serializes header writers

	logger *slog.Logger
	tracer trace.Tracer
}

// RequestOptions are per-call overrides. Zero fields inherit the client defaults.
type RequestOptions struct {
	Method string
	Body   io.Reader // pre-serialized body
	Header Headers   // merged over the default headers, last write wins per name
}

// New creates a transport client. Default headers start as
// {Content-Type: application/json}.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
		Method:     http.MethodGet,
		logger:     slog.Default(),
		tracer:     otel.Tracer(instrumentationName),
	}
	h := Headers{}
	h.Set("Content-Type", "application/json")
	c.headers.Store(&h)

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Headers returns a copy of the current default headers.
func (c *Client) Headers() Headers {
	return c.headers.Load().Copy()
}

// SetHeader replaces a default header for subsequent requests.
func (c *Client) SetHeader(name, value string) {
	c.swapHeaders(func(h Headers) { h.Set(name, value) })
}

// DelHeader removes a default header for subsequent requests.
func (c *Client) DelHeader(name string) {
	c.swapHeaders(func(h Headers) { h.Del(name) })
}

// UpdateHeaders merges h into the default headers.
func (c *Client) UpdateHeaders(h Headers) {
	c.swapHeaders(func(cur Headers) { cur.Update(h) })
}

func (c *Client) swapHeaders(mutate func(Headers)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.headers.Load().Copy()
	mutate(next)
	c.headers.Store(&next)
}

// Request builds the outbound request from the defaults and opts, sends it and
// validates the status. A 2xx response is returned with its body unread; any
// other status yields *apierr.HTTPError. Cancellation comes from ctx.
//
// The exchange span of a 2xx response ends when the caller closes its body,
// so streamed responses are traced until they are consumed.
func (c *Client) Request(ctx context.Context, path string, opts *RequestOptions) (*http.Response, error) {
	var o RequestOptions
	if opts != nil {
		o = *opts
	}
	method := o.Method
	if method == "" {
		method = c.Method
	}
	target := c.toURL(path)

	ctx, span := c.tracer.Start(ctx, "HTTP "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", target),
		),
	)

	req, err := http.NewRequestWithContext(ctx, method, target, o.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header = http.Header(c.Headers().Update(o.Header))

	logger := c.logger.With(
		slog.String("method", method),
		slog.String("url", target),
	)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.WarnContext(ctx, "request failed",
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		span.End()
		return nil, fmt.Errorf("send request: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	logger.DebugContext(ctx, "request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if !ValidStatus(resp.StatusCode) {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
		span.End()
		return nil, apierr.FromResponse(req, resp)
	}
	resp.Body = &spanBody{ReadCloser: resp.Body, span: span}
	return resp, nil
}

// spanBody ends the exchange span on the first Close.
type spanBody struct {
	io.ReadCloser
	span trace.Span
	once sync.Once
}

func (b *spanBody) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(func() { b.span.End() })
	return err
}

// ValidStatus reports whether status is in the 2xx range.
func ValidStatus(status int) bool {
	return status >= 200 && status <= 299
}

// toURL joins base and path verbatim; slashes are not normalized.
func (c *Client) toURL(path string) string {
	return c.BaseURL + path
}
