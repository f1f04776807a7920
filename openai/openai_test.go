package openai_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodrovis/oaix/apierr"
	"github.com/bodrovis/oaix/client"
	"github.com/bodrovis/oaix/internal/testutil"
	"github.com/bodrovis/oaix/openai"
)

// newTestClient points a client with key sk-test at srv.
func newTestClient(t *testing.T, srv *testutil.Server, cfg openai.Config) *openai.Client {
	t.Helper()
	cfg.BasePath = srv.URL + "/v1"
	if cfg.APIKey == "" {
		cfg.APIKey = "sk-test"
	}
	c, err := openai.New(cfg, client.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := openai.New(openai.Config{})
	assert.ErrorIs(t, err, openai.ErrMissingAPIKey)

	_, err = openai.New(openai.Config{APIKey: "   "})
	assert.ErrorIs(t, err, openai.ErrMissingAPIKey)
}

func TestNew_Defaults(t *testing.T) {
	c, err := openai.New(openai.Config{APIKey: "sk-test"})
	require.NoError(t, err)

	assert.Equal(t, openai.DefaultBasePath, c.BasePath())
	h := c.Headers()
	assert.Equal(t, "Bearer sk-test", h.Get("Authorization"))
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.False(t, h.Has(openai.HeaderOrganization))
	assert.Equal(t, "sk-test", c.APIKey())
	assert.Empty(t, c.Organization())
}

func TestNew_OrganizationAndExtraHeaders(t *testing.T) {
	c, err := openai.New(openai.Config{
		APIKey:       "sk-test",
		Organization: "org-acme",
		Headers: map[string]string{
			"X-Extra":       "1",
			"authorization": "Bearer ignored",
		},
	})
	require.NoError(t, err)

	h := c.Headers()
	assert.Equal(t, "org-acme", h.Get("OpenAI-Organization"))
	assert.Equal(t, "1", h.Get("X-Extra"))
	assert.Equal(t, "Bearer sk-test", h.Get("Authorization"), "api key wins over a configured header")
}

func TestNew_TransportOptionErrorsSurface(t *testing.T) {
	_, err := openai.New(openai.Config{APIKey: "sk-test"}, client.WithHTTPClient(nil))
	assert.Error(t, err)
}

func TestSetAPIKey_ReplacesAuthorization(t *testing.T) {
	srv := testutil.NewServer(t, testutil.Respond(http.StatusOK, `{}`, nil))
	c := newTestClient(t, srv, openai.Config{})

	c.SetAPIKey("sk-new")

	_, err := c.Request(context.Background(), "/models", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-new", srv.Last().Header.Get("Authorization"))
	assert.Equal(t, "sk-new", c.APIKey())
}

func TestSetOrganization_EmptyRemovesHeader(t *testing.T) {
	srv := testutil.NewServer(t, testutil.Respond(http.StatusOK, `{}`, nil))
	c := newTestClient(t, srv, openai.Config{})

	c.SetOrganization("acme")
	_, err := c.Request(context.Background(), "/models", nil)
	require.NoError(t, err)
	assert.Equal(t, "acme", srv.Last().Header.Get("OpenAI-Organization"))

	c.SetOrganization("")
	_, err = c.Request(context.Background(), "/models", nil)
	require.NoError(t, err)
	assert.Empty(t, srv.Last().Header.Values("OpenAI-Organization"))
	assert.Empty(t, c.Organization())
}

func TestRequest_UsesPOSTAndBasePath(t *testing.T) {
	srv := testutil.NewServer(t, testutil.Respond(http.StatusOK, `{}`, nil))
	c := newTestClient(t, srv, openai.Config{})

	resp, err := c.Request(context.Background(), "/moderations", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	last := srv.Last()
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/v1/moderations", last.Path)
}

func TestRequest_RateLimitEnriched(t *testing.T) {
	srv := testutil.NewServer(t, testutil.Respond(http.StatusTooManyRequests,
		`{"error":{"code":"rate_limit","message":"slow down","type":"rate_limit_error"}}`,
		map[string]string{"x-request-id": "req_1", "openai-model": "gpt-3.5-turbo"}))
	c := newTestClient(t, srv, openai.Config{})

	_, err := c.Request(context.Background(), "/completions", nil)
	require.Error(t, err)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Request req_1: slow down", err.Error())
	assert.Equal(t, "rate_limit", apiErr.Code)
	assert.Equal(t, "gpt-3.5-turbo", apiErr.Model)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.True(t, apierr.IsRateLimited(err))
}

func TestRequest_InvalidKeyLocalized(t *testing.T) {
	srv := testutil.NewServer(t, testutil.Respond(http.StatusUnauthorized,
		`{"error":{"code":"invalid_api_key","message":"Incorrect API key provided","type":"invalid_request_error"}}`, nil))
	c := newTestClient(t, srv, openai.Config{})

	_, err := c.Request(context.Background(), "/completions", nil)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.DefaultMessages()["invalid_api_key"], apiErr.Message)
}

func TestRequest_CustomErrorMessages(t *testing.T) {
	srv := testutil.NewServer(t, testutil.Respond(http.StatusUnauthorized,
		`{"error":{"code":"invalid_organization","message":"No such organization"}}`, nil))
	c := newTestClient(t, srv, openai.Config{
		ErrorMessages: apierr.Messages{"invalid_organization": "unknown organization"},
	})

	_, err := c.Request(context.Background(), "/completions", nil)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "unknown organization", apiErr.Message)
}

func TestRequest_NonReportableStaysTransportError(t *testing.T) {
	srv := testutil.NewServer(t, testutil.Respond(http.StatusNotFound,
		`{"error":{"code":"not_found","message":"no such model"}}`, nil))
	c := newTestClient(t, srv, openai.Config{})

	_, err := c.Request(context.Background(), "/models/x", nil)

	var httpErr *apierr.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)

	var apiErr *apierr.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestRequest_MalformedBodyStaysTransportError(t *testing.T) {
	srv := testutil.NewServer(t, testutil.Respond(http.StatusInternalServerError, `<html>upstream</html>`,
		map[string]string{"Content-Type": "text/html"}))
	c := newTestClient(t, srv, openai.Config{})

	_, err := c.Request(context.Background(), "/completions", nil)

	var httpErr *apierr.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Same(t, httpErr, err, "the transport error is returned as is")
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	require.NotNil(t, httpErr.Request)
	require.NotNil(t, httpErr.Response)
	assert.Equal(t, "<html>upstream</html>", string(httpErr.Body))
}

func TestSetOrganization_ConcurrentWithRequests(t *testing.T) {
	srv := testutil.NewServer(t, testutil.Respond(http.StatusOK, `{}`, nil))
	c := newTestClient(t, srv, openai.Config{})

	err := testutil.Concurrently(context.Background(), 20, func(ctx context.Context, i int) error {
		switch i % 4 {
		case 0:
			c.SetOrganization(fmt.Sprintf("org-%d", i))
		case 1:
			c.SetOrganization("")
		default:
			resp, err := c.Request(ctx, "/models", nil)
			if err != nil {
				return err
			}
			return resp.Body.Close()
		}
		return nil
	})
	require.NoError(t, err)

	for _, r := range srv.Requests() {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.LessOrEqual(t, len(r.Header.Values("OpenAI-Organization")), 1)
	}
}
