// Package config provides configuration management for crashdb.
//
// This package handles loading and validating server configuration
// from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - CRASHDB_PAGE_LIMIT_MAX: Maximum page size for listing requests
//   - CRASHDB_BEARER_TOKEN_ENABLED: Require bearer tokens on requests
//   - CRASHDB_LOG_LEVEL: Logging verbosity
//   - DATABASE_URL: Database connection
//   - PORT: Server listen port
package config
