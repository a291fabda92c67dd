// Package config loads runtime configuration for the snooze CLI.
//
// Sources & precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
package config

import "time"

// Config holds runtime settings for the CLI.
type Config struct {
	// APIBaseURL is the root of the Hack-or-Snooze REST API.
	APIBaseURL string

	// RequestTimeout bounds every API call end to end.
	RequestTimeout time.Duration

	// SessionDBPath is the sqlite file holding the persisted login session.
	SessionDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://hack-or-snooze-v3.herokuapp.com"
	c.RequestTimeout = 15 * time.Second
	c.SessionDBPath = "snooze.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
