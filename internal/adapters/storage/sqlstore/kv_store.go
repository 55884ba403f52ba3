package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pet-adoption/internal/platform/database"
)

// KVStore implementa kv.Store sobre la tabla kv_entries.
type KVStore struct {
	db     *sqlx.DB
	driver string
	now    func() time.Time
}

func NewKVStore(db *sqlx.DB, driver string) *KVStore {
	return &KVStore{
		db:     db,
		driver: driver,
		now:    time.Now,
	}
}

// q rebinds ? al formato nativo del driver ($1,$2,... en Postgres).
func (s *KVStore) q(query string) string { return s.db.Rebind(query) }

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, s.q(`SELECT entry_value FROM kv_entries WHERE entry_key = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	now := s.now().UTC()

	var query string
	switch s.driver {
	case database.DriverMySQL:
		query = `INSERT INTO kv_entries (entry_key, entry_value, updated_at) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE entry_value = VALUES(entry_value), updated_at = VALUES(updated_at)`
	default: // sqlite3, postgres
		query = `INSERT INTO kv_entries (entry_key, entry_value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT (entry_key) DO UPDATE SET entry_value = excluded.entry_value, updated_at = excluded.updated_at`
	}

	if _, err := s.db.ExecContext(ctx, s.q(query), key, value, now); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}
