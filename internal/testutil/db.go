package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"pet-adoption/internal/platform/database"
)

// NewTestDB abre un SQLite in-memory y corre todas las migraciones.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// cache=shared para que todas las conexiones del pool vean la misma base;
	// un nombre por test evita interferencia entre tests.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := database.Migrate(context.Background(), conn, database.DriverSQLite); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return conn
}
