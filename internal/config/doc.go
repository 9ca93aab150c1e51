// Package config loads tagdeck's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tagdeck/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. TAGDECK_ENDPOINT, when set, replaces the endpoint from the file
//
// Command-line flags are applied by the caller after Load.
//
// # TOML Format
//
//	endpoint = "https://example.com/links"
//	request_timeout = 0   # seconds; 0 keeps the transport default
//	listen = "127.0.0.1:8787"
//	log_level = "info"
//	log_file = "~/.local/state/tagdeck/tagdeck.log"
//
// Every field is optional, but Validate rejects a configuration without an
// endpoint. Tilde expansion is performed for log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and negative timeouts
package config
