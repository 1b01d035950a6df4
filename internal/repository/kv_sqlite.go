package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type KVSQLite struct {
	db *sql.DB
}

func NewKVSQLite(db *sql.DB) *KVSQLite {
	return &KVSQLite{db: db}
}

const (
	upsertKVSQL = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`

	selectKVSQL = `SELECT value FROM kv_store WHERE key=?`
)

// Put inserts or overwrites the value for key.
func (r *KVSQLite) Put(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, upsertKVSQL, key, value, time.Now().UTC())
	return err
}

// Get returns the stored value and whether the key exists. A missing key is
// not an error.
func (r *KVSQLite) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, selectKVSQL, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}
