// Package migrations embeds the SQL schema migrations applied by goose on
// server start when the PostgreSQL backend is selected.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
