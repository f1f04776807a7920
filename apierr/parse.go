package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	errNotJSON     = errors.New("non-json error body")
	errNoErrorNode = errors.New("missing error object")
	errTrailing    = errors.New("trailing data after error body")
)

// Envelope is the service error payload: {"error":{"code","message","type"}}.
type Envelope struct {
	Code    string
	Message string
	Type    string
}

// ParseEnvelope decodes an error body. Code may be a string, a number or null.
func ParseEnvelope(slurp []byte) (*Envelope, error) {
	trimmed := strings.TrimSpace(string(slurp))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotJSON
	}

	// Decode with UseNumber so numeric codes keep their exact text.
	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("invalid json in error body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailing
	}

	errObj, ok := obj["error"].(map[string]any)
	if !ok {
		return nil, errNoErrorNode
	}

	return &Envelope{
		Code:    getCode(errObj, "code"),
		Message: getStringOr(errObj, "message", ""),
		Type:    getStringOr(errObj, "type", ""),
	}, nil
}

func coalesce(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}

func getString(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

func getStringOr(m map[string]any, key, def string) string {
	if s, ok := getString(m, key); ok {
		return s
	}
	return def
}

// getCode accepts "invalid_api_key", 429 or null.
func getCode(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
