// Package config loads client configuration from defaults, a YAML file,
// a .env file and OPENAI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bodrovis/oaix/internal/logging"
	"github.com/bodrovis/oaix/openai"
)

// EnvPrefix is the prefix of recognized environment variables.
const EnvPrefix = "OPENAI_"

// envKeys maps environment variable suffixes to config keys.
var envKeys = map[string]string{
	"api_key":      "api_key",
	"organization": "organization",
	"base_path":    "base_path",
	"log_level":    "log.level",
	"log_format":   "log.format",
}

// Config is the root configuration structure.
type Config struct {
	BasePath     string            `koanf:"base_path"    validate:"required,url"`
	APIKey       string            `koanf:"api_key"      validate:"required"`
	Organization string            `koanf:"organization"`
	Headers      map[string]string `koanf:"headers"`
	Log          LogConfig         `koanf:"log"          validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=json text pretty"`
}

// Options control where Load looks for configuration.
type Options struct {
	// File is an optional YAML file. A missing file is skipped.
	File string

	// DotEnv loads a .env file into the process environment before env vars
	// are read. DotEnvPaths overrides the lookup from the working directory.
	DotEnv      bool
	DotEnvPaths []string
}

func defaults() map[string]any {
	return map[string]any{
		"base_path":  openai.DefaultBasePath,
		"log.level":  "info",
		"log.format": "json",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (OPENAI_ prefix), including those from .env
//  2. YAML config file
//  3. Default values
//
// The result is not validated; call Validate before use.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if opts.File != "" {
		if err := loadFileIfExists(k, opts.File); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", opts.File, err)
		}
	}

	if opts.DotEnv {
		// A missing file only matters when the caller named it.
		err := LoadDotEnv(opts.DotEnvPaths...)
		if err != nil && (len(opts.DotEnvPaths) > 0 || !errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// envKey maps OPENAI_LOG_LEVEL to "log.level". Unknown variables are dropped.
func envKey(s string) string {
	return envKeys[strings.ToLower(strings.TrimPrefix(s, EnvPrefix))]
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}

// OpenAI converts the configuration into service client settings.
func (c *Config) OpenAI(logger *slog.Logger) openai.Config {
	var headers map[string]string
	if len(c.Headers) > 0 {
		headers = make(map[string]string, len(c.Headers))
		for k, v := range c.Headers {
			headers[k] = v
		}
	}
	return openai.Config{
		BasePath:     c.BasePath,
		APIKey:       c.APIKey,
		Organization: c.Organization,
		Headers:      headers,
		Logger:       logger,
	}
}

// Logger builds a logger writing to w using the log settings.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return logging.New(logging.Config{Level: c.Log.Level, Format: c.Log.Format}, w)
}
