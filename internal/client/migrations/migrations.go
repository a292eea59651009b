// Package migrations embeds the client-side schema migrations that goose
// applies when the local vault database is opened.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
