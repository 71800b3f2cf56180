package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresSnapshotStore keeps each collection as one JSONB row.
type PostgresSnapshotStore struct {
	DB *sql.DB
}

func NewPostgresSnapshotStore(db *sql.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{DB: db}
}

func (r *PostgresSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := r.DB.QueryRowContext(ctx, "SELECT value FROM snapshots WHERE key = $1", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *PostgresSnapshotStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()`,
		key, string(value),
	)
	return err
}

func (r *PostgresSnapshotStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
