// Package migrations embeds the goose SQL migrations.
package migrations

import "embed"

// FS holds every migration file in goose naming order.
//
//go:embed *.sql
var FS embed.FS
