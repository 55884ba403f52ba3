// Package migrations contiene migraciones goose en Go, con DDL por dialecto.
package migrations

// dialect lo setea el paquete database antes de goose.Up.
var dialect string

// SetDialect configura el dialecto SQL: "sqlite3", "postgres" o "mysql".
func SetDialect(d string) {
	dialect = d
}
