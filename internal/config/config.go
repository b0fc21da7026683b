// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config carries everything cmd needs to wire the client together.
type Config struct {
	// APIURL is the Budget Compass backend base URL.
	APIURL string

	// HTTPTimeout bounds each backend call.
	HTTPTimeout time.Duration

	// TokenFile overrides where the session token is persisted. Empty
	// means the default under the user config directory.
	TokenFile string

	// LogLevel is debug, info, warn or error.
	LogLevel string

	// MetricsAddr, when non-empty, serves Prometheus metrics on this
	// address (e.g. "localhost:9190") for debugging.
	MetricsAddr string
}

// Load reads configuration from the environment. Call godotenv first if an
// env file should participate.
func Load() *Config {
	return &Config{
		APIURL:      getEnv("API_URL", "http://localhost:8000"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 15*time.Second),
		TokenFile:   getEnv("TOKEN_FILE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MetricsAddr: getEnv("METRICS_ADDR", ""),
	}
}

// Validate checks the configuration, aggregating every problem into one
// error so the user can fix them all at once.
func (c *Config) Validate() error {
	var problems []string

	if u, err := url.Parse(c.APIURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid API URL %q: %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid API URL scheme %q: must be http or https", u.Scheme))
	}

	if c.HTTPTimeout < time.Second {
		problems = append(problems, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 5*time.Minute {
		problems = append(problems, fmt.Sprintf("invalid HTTP timeout %v: must be at most 5 minutes", c.HTTPTimeout))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level %q: must be debug, info, warn or error", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
