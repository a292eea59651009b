package config

import "time"

// Config holds runtime settings for the companion shell.
//
// Fields:
//   - ServerAddr: base URL of the DuckyCart API.
//   - HTTPTimeout: per-request timeout for the HTTP client.
//   - VaultPath: path to the local encrypted vault database; the device key
//     file lives next to it.
//
// Units: HTTPTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	ServerAddr  string
	HTTPTimeout time.Duration
	VaultPath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8000"
	c.HTTPTimeout = 10 * time.Second
	c.VaultPath = "vault.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
