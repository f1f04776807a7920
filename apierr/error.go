package apierr

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody caps how much of a failed response body is kept for inspection.
const maxErrorBody = 1 << 20

// HTTPError is returned by the transport when the response status is outside 2xx.
type HTTPError struct {
	Status   int            // HTTP status
	Request  *http.Request  // outbound request as sent
	Response *http.Response // response; Body is a re-readable copy of the original
	Body     []byte         // raw (size-limited) body
}

// FromResponse reads the body of a failed exchange once, closes the live stream
// and returns the transport error carrying the request/response pair.
func FromResponse(req *http.Request, resp *http.Response) *HTTPError {
	e := &HTTPError{
		Status:   resp.StatusCode,
		Request:  req,
		Response: resp,
	}
	if resp.Body != nil {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
		e.Body = slurp
	}
	resp.Body = io.NopCloser(bytes.NewReader(e.Body))
	return e
}

func (e *HTTPError) Error() string {
	if text := http.StatusText(e.Status); text != "" {
		return fmt.Sprintf("unexpected status %d %s", e.Status, text)
	}
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// APIError is a transport failure the service described with an error envelope.
type APIError struct {
	Status       int    // HTTP status
	Code         string // service error code, e.g. "invalid_api_key"
	Type         string // service error type, e.g. "rate_limit_error"
	Message      string // localized when the code is known, service message otherwise
	RequestID    string // x-request-id
	Model        string // openai-model
	Version      string // openai-version
	Organization string // openai-organization
	Err          *HTTPError
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("Request %s: %s", e.RequestID, coalesce(e.Message, "<empty message>"))
	}
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// Unwrap exposes the underlying transport error.
func (e *APIError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}
