package apierr

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
)

// Response headers carrying service diagnostics.
const (
	HeaderRequestID    = "X-Request-Id"
	HeaderModel        = "Openai-Model"
	HeaderVersion      = "Openai-Version"
	HeaderOrganization = "Openai-Organization"
)

var reportable = []int{
	http.StatusUnauthorized,        // 401
	http.StatusTooManyRequests,     // 429
	http.StatusInternalServerError, // 500
}

// IsReportable reports whether the service sends an error envelope for status.
func IsReportable(status int) bool {
	return slices.Contains(reportable, status)
}

// Messages maps service error codes to localized messages.
type Messages map[string]string

// DefaultMessages returns a fresh copy of the built-in localized table.
func DefaultMessages() Messages {
	return Messages{
		"invalid_api_key":      "无效的 API 密钥",
		"invalid_organization": "无效的组织ID",
	}
}

// Lookup returns the localized message for code, if any.
func (m Messages) Lookup(code string) (string, bool) {
	if m == nil || code == "" {
		return "", false
	}
	msg, ok := m[code]
	return msg, ok && msg != ""
}

// Enricher turns transport errors with a reportable status into *APIError.
type Enricher struct {
	Messages Messages
	Logger   *slog.Logger
}

// Enrich never fails: anything it cannot classify is returned unchanged.
func (en Enricher) Enrich(err error) error {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}
	if !IsReportable(httpErr.Status) {
		return err
	}

	env, perr := ParseEnvelope(httpErr.Body)
	if perr != nil {
		return err
	}

	apiErr := &APIError{
		Status:  httpErr.Status,
		Code:    env.Code,
		Type:    env.Type,
		Message: env.Message,
		Err:     httpErr,
	}
	if msg, ok := en.Messages.Lookup(env.Code); ok {
		apiErr.Message = msg
	}
	if httpErr.Response != nil {
		h := httpErr.Response.Header
		apiErr.RequestID = h.Get(HeaderRequestID)
		apiErr.Model = h.Get(HeaderModel)
		apiErr.Version = h.Get(HeaderVersion)
		apiErr.Organization = h.Get(HeaderOrganization)
	}

	if en.Logger != nil {
		en.Logger.Debug("service error",
			slog.Int("status", apiErr.Status),
			slog.String("code", apiErr.Code),
			slog.String("request_id", apiErr.RequestID),
		)
	}
	return apiErr
}
