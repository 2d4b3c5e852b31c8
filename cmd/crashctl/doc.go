// Package main implements crashctl, the CLI for the crashdb traffic crash
// records server.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Record store interfaces and GORM implementation
//   - pkg/idgen: Generated record identifiers
//   - pkg/validate: Field validation and normalization
//   - pkg/dataset: Bulk extract parsing and loading
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the crashctl CLI:
//
//	# Run database migrations
//	crashctl db migrate
//
//	# Start the server
//	crashctl server
//
//	# Bulk-load an extract
//	crashctl import extract.json
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - CRASHDB_CONFIG_PATH: Config file directory (default: /etc/crashdb/config)
//   - CRASHDB_TOKEN_SECRET: HS256 secret for bearer tokens, when enabled
//   - CRASHDB_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8000)
package main
