package openai

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/bodrovis/oaix/apierr"
	"github.com/bodrovis/oaix/client"
)

// DefaultBasePath is the production API endpoint.
const DefaultBasePath = "https://api.openai.com/v1"

// Request headers managed by the client.
const (
	HeaderAuthorization = "Authorization"
	HeaderOrganization  = "OpenAI-Organization"
)

// ErrMissingAPIKey is returned by New when Config.APIKey is empty.
var ErrMissingAPIKey = errors.New("openai: api key is required")

// Config is consumed once by New.
type Config struct {
	BasePath      string            // defaults to DefaultBasePath
	APIKey        string            // required
	Organization  string            // optional
	Headers       map[string]string // extra default headers
	ErrorMessages apierr.Messages   // localized messages by error code; nil means apierr.DefaultMessages()
	Logger        *slog.Logger
}

// Client is the service layer over a transport client.
type Client struct {
	transport *client.Client
	enricher  apierr.Enricher

	mu           sync.RWMutex
	apiKey       string
	organization string
}

// New builds a client. Transport options (HTTP client, tracer provider, ...)
// are applied after the service defaults.
func New(cfg Config, opts ...client.Option) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	base := cfg.BasePath
	if base == "" {
		base = DefaultBasePath
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "openai.Client"))

	all := []client.Option{
		client.WithMethod(http.MethodPost),
		client.WithHeaders(client.NewHeaders(cfg.Headers)),
		client.WithLogger(logger),
	}
	transport, err := client.New(base, append(all, opts...)...)
	if err != nil {
		return nil, err
	}

	msgs := cfg.ErrorMessages
	if msgs == nil {
		msgs = apierr.DefaultMessages()
	}

	c := &Client{
		transport: transport,
		enricher:  apierr.Enricher{Messages: msgs, Logger: logger},
	}
	c.SetAPIKey(cfg.APIKey)
	c.SetOrganization(cfg.Organization)
	return c, nil
}

// SetAPIKey replaces the Authorization header for subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
	c.transport.SetHeader(HeaderAuthorization, "Bearer "+key)
}

// SetOrganization sets the organization header, or removes it when org is empty.
func (c *Client) SetOrganization(org string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.organization = org
	if org == "" {
		c.transport.DelHeader(HeaderOrganization)
		return
	}
	c.transport.SetHeader(HeaderOrganization, org)
}

func (c *Client) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

func (c *Client) Organization() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.organization
}

// Headers returns a copy of the headers the next request will start from.
func (c *Client) Headers() client.Headers {
	return c.transport.Headers()
}

// BasePath is the endpoint every operation path is appended to.
func (c *Client) BasePath() string {
	return c.transport.BaseURL
}

// Request performs one exchange. Transport failures go through error
// enrichment: the result is either the original error or an *apierr.APIError.
func (c *Client) Request(ctx context.Context, path string, opts *client.RequestOptions) (*http.Response, error) {
	resp, err := c.transport.Request(ctx, path, opts)
	if err != nil {
		return nil, c.enricher.Enrich(err)
	}
	return resp, nil
}
