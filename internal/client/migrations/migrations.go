// Package migrations embeds the SQL migrations of the client's local
// key-value database. They are applied with goose on every start.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
