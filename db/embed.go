// Package db embeds the SQL migrations so production builds carry the
// schema with the binary (build tag embed_migrations in cmd/crashctl).
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
