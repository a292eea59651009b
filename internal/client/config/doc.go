// Package config loads runtime configuration for the companion shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the DuckyCart API
//	-t int      per-request HTTP timeout (seconds)
//	-v string   path to the local vault database file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_addr": "http://127.0.0.1:8000",
//	  "http_timeout": "10s",
//	  "vault_path": "vault.db"
//	}
//
// Primary API
//
//   - type Config                     — holds ServerAddr, HTTPTimeout and VaultPath
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
