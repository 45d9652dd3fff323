// filepath: internal/db/migrations/embed.go

// Package migrations ships the goose migrations for the sync store.
// The repository package runs them from FS, so the binary needs no files on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
