// Package migrations embeds the sqlite schema migrations applied on startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
