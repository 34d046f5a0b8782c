// Package db holds the embedded database schema.
package db

import _ "embed"

// Schema is the DDL applied at startup.
//
//go:embed schema.sql
var Schema string
