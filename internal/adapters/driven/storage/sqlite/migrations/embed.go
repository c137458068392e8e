// Package migrations embeds the SQL migrations for the history database.
package migrations

import "embed"

// FS holds the versioned NNN_name.{up,down}.sql files.
//
//go:embed *.sql
var FS embed.FS
