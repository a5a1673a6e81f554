// Package migrations embeds the audit store schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
