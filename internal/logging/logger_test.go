package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/masq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "json"}, &buf)

	logger.Debug("request completed", "status", 200)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.EqualValues(t, 200, entry["status"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "text"}, &buf)

	logger.Debug("dropped")
	logger.Info("kept", "code", "invalid_api_key")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "code=invalid_api_key")
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "pretty"}, &buf)

	logger.Info("dropped")
	logger.Warn("service error", "status", 429)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "service error")
	assert.Contains(t, out, "429")
}

func TestNew_RedactsSecrets(t *testing.T) {
	for _, format := range []string{"json", "text", "pretty"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: "debug", Format: format}, &buf)

			logger.Info("configured",
				"api_key", "plain-value-1",
				"authorization", "Bearer abc.def",
				"note", "sk-abcdefghijklmnop",
				"path", "/moderations",
			)

			out := buf.String()
			assert.NotContains(t, out, "plain-value-1")
			assert.NotContains(t, out, "abc.def")
			assert.NotContains(t, out, "sk-abcdefghijklmnop")
			assert.Contains(t, out, "/moderations")
		})
	}
}

func TestNew_PrettyRedactsWithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "pretty"}, &buf)

	logger.With("api_key", "plain-value-2").WithGroup("req").Info("sent", "authorization", "Bearer xyz.123")

	out := buf.String()
	assert.Contains(t, out, "sent")
	assert.NotContains(t, out, "plain-value-2")
	assert.NotContains(t, out, "xyz.123")
}

func TestNewReplaceAttr_ExtraOptions(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: NewReplaceAttr(masq.WithFieldName("session")),
	})
	slog.New(h).Info("x", "session", "s-123", "user", "u-1")

	out := buf.String()
	assert.False(t, strings.Contains(out, "s-123"), out)
	assert.Contains(t, out, "u-1")
}
