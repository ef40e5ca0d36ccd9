// Package migrations embeds the SQL schema applied by goose
package migrations

import "embed"

// FS содержит все файлы миграций
//
//go:embed *.sql
var FS embed.FS
