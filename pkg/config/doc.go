// Package config provides configuration management for the access engine.
//
// Configuration is loaded from an optional YAML file merged with
// environment variables; environment variables win.
//
// # Configuration Sources
//
//   - /etc/access/config/access.yml (or ACCESS_CONFIG_PATH)
//   - ACCESS_* environment variables
//
// # Key Configuration Options
//
//   - ACCESS_TRUSTED_PROXIES: CIDR ranges whose X-Forwarded-For is honored
//   - ACCESS_TOKEN_TTL: Project token lifetime in seconds
//   - ACCESS_BIND_ADDRESS, ACCESS_PORT: Server listen address
//   - DATABASE_URL: Database connection
package config
