package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateInquiries, downCreateInquiries)
}

func upCreateInquiries(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS inquiries (
    id           TEXT PRIMARY KEY,
    pet_id       TEXT NOT NULL,
    shelter_name TEXT NOT NULL,
    name         TEXT NOT NULL,
    email        TEXT NOT NULL,
    phone        TEXT NOT NULL,
    message      TEXT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS inquiries (
    id           VARCHAR(36) PRIMARY KEY,
    pet_id       VARCHAR(191) NOT NULL,
    shelter_name VARCHAR(255) NOT NULL,
    name         VARCHAR(255) NOT NULL,
    email        VARCHAR(255) NOT NULL,
    phone        VARCHAR(64) NOT NULL,
    message      TEXT NOT NULL,
    created_at   TIMESTAMP(6) NOT NULL
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS inquiries (
    id           TEXT PRIMARY KEY,
    pet_id       TEXT NOT NULL,
    shelter_name TEXT NOT NULL,
    name         TEXT NOT NULL,
    email        TEXT NOT NULL,
    phone        TEXT NOT NULL,
    message      TEXT NOT NULL,
    created_at   TIMESTAMP NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create inquiries table: %w", err)
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX inquiries_pet_id_idx ON inquiries (pet_id)`)
	return err
}

func downCreateInquiries(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS inquiries`)
	return err
}
