package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jask/whohasphone/internal/database"
)

// Entry is one row of the app_state key-value table.
type Entry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// KVRepo stores opaque blobs by key.
type KVRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db, now: database.Now}
}

// Get returns the blob stored under key. The bool is false when the key is absent.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, err := r.Entry(ctx, key)
	if err != nil || e == nil {
		return nil, false, err
	}
	return e.Value, true, nil
}

// Entry returns the full row for key, or nil when it is absent.
func (r *KVRepo) Entry(ctx context.Context, key string) (*Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM app_state WHERE key = ?`, key)
	var (
		e       Entry
		updated string
	)
	if err := row.Scan(&e.Key, &e.Value, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, updated); err == nil {
		e.UpdatedAt = t
	}
	return &e, nil
}

func (r *KVRepo) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO app_state(key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;
	`, key, value, r.now().Format(time.RFC3339))
	return err
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key)
	return err
}
