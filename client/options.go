package client

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a Client.
type Option func(*Client) error

// WithHTTPClient sets the *http.Client used for exchanges.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		c.HTTPClient = hc
		return nil
	}
}

// WithMethod sets the default request method.
func WithMethod(method string) Option {
	return func(c *Client) error {
		method = strings.ToUpper(strings.TrimSpace(method))
		if method == "" {
			return errors.New("method is empty")
		}
		c.Method = method
		return nil
	}
}

// WithHeaders merges h into the default headers.
func WithHeaders(h Headers) Option {
	return func(c *Client) error {
		c.UpdateHeaders(h)
		return nil
	}
}

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithTracerProvider traces exchanges with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) error {
		if tp == nil {
			return errors.New("tracer provider is nil")
		}
		c.tracer = tp.Tracer(instrumentationName)
		return nil
	}
}
