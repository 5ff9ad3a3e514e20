// Package config assembles the runtime settings of the brewdesk client.
// Sources are layered: built-in defaults, then an optional JSON file, then
// command-line flags, with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the brewdesk client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API.
//   - DatabasePath: location of the local sqlite state database.
//   - TenantID: tenant scope for order endpoints.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	TenantID           string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:3008"
	c.DatabasePath = "brewdesk.db"
	c.TenantID = "default"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a file is given) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
