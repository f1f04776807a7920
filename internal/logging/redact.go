package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// Bearer token pattern
	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)

	// API secret keys: sk-..., sk-proj-...
	secretKeyPattern = regexp.MustCompile(`^sk-[A-Za-z0-9_-]{8,}$`)
)

// DefaultRedactOptions returns the masq options used by New.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("apikey"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("APIKey"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("Authorization"),
		masq.WithFieldName("token"),
		masq.WithFieldName("secret"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(secretKeyPattern),
	}
}

// NewReplaceAttr creates a ReplaceAttr function for slog.HandlerOptions that
// redacts sensitive data.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}
