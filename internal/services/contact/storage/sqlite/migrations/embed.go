package migrations

import "embed"

// FS contains embedded SQLite migrations for contact storage.
//
//go:embed *.sql
var FS embed.FS
