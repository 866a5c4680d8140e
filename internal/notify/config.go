package notify

import (
	"os"
	"strconv"
	"strings"
)

// Config holds settings for the remote report endpoint.
type Config struct {
	Enabled   bool
	LogCalls  bool
	Endpoint  string
	Token     string
	Identity  string
	TimeoutMs int
}

// DefaultConfig returns a disabled configuration. No production endpoint is
// known, so forwarding stays off until one is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		LogCalls:  false,
		TimeoutMs: 5000,
	}
}

// LoadConfig reads REPORTCAL_NOTIFY_* environment variables over the defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("REPORTCAL_NOTIFY_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("REPORTCAL_NOTIFY_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("REPORTCAL_NOTIFY_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("REPORTCAL_NOTIFY_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("REPORTCAL_NOTIFY_IDENTITY"); v != "" {
		cfg.Identity = v
	}
	if v := os.Getenv("REPORTCAL_NOTIFY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}

// Usable reports whether forwarding is both enabled and pointed somewhere.
func (c Config) Usable() bool {
	return c.Enabled && c.Endpoint != ""
}
