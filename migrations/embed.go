// Package migrations holds the goose migrations for the PostgreSQL backend.
package migrations

import "embed"

// FS contains the embedded SQL migrations.
//
//go:embed *.sql
var FS embed.FS
