package migrations

import "embed"

// Migrations archivos SQL embebidos que goose aplica al arrancar.
//
//go:embed *.sql
var Migrations embed.FS
