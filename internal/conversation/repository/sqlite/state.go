package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"enrollment-assistant/internal/conversation/repository"
)

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS conversation_state (
		state_key     TEXT PRIMARY KEY,
		payload       TEXT NOT NULL,
		updated_at_ms INTEGER NOT NULL
	);`)
	return err
}

func (r *implRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM conversation_state WHERE state_key = ?`, key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("conversation/repository/sqlite.Get %s: %w", key, err)
	}
	return []byte(payload), nil
}

func (r *implRepository) Put(ctx context.Context, key string, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conversation_state (state_key, payload, updated_at_ms)
		VALUES (?, ?, ?)
		ON CONFLICT(state_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at_ms = excluded.updated_at_ms`,
		key, string(payload), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("conversation/repository/sqlite.Put %s: %w", key, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM conversation_state WHERE state_key = ?`, key); err != nil {
		return fmt.Errorf("conversation/repository/sqlite.Delete %s: %w", key, err)
	}
	return nil
}
