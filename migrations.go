// Package linkaudit holds the assets shared by the commands, such as the
// embedded database migrations.
package linkaudit

import "embed"

// Migrations contains the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
