package apierr

import (
	"errors"
	"net/http"
)

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}

// IsUnauthorized: 401 from either error layer.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsRateLimited: 429 from either error layer.
func IsRateLimited(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}

// IsServerError says the failure happened on the service side (5xx).
func IsServerError(err error) bool {
	st := StatusCode(err)
	return st >= http.StatusInternalServerError && st <= 599
}
