package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ziadkadry99/secondopinion/internal/db"
)

// SQLBackend keeps sessions in the session_values table.
type SQLBackend struct {
	db  *db.DB
	now func() time.Time
}

// NewSQLBackend creates a SQLBackend backed by the given database.
func NewSQLBackend(database *db.DB) *SQLBackend {
	return &SQLBackend{db: database, now: time.Now}
}

func (b *SQLBackend) timestamp() string {
	return b.now().UTC().Format(time.DateTime)
}

// Get returns the value under key and refreshes updated_at on every row of
// the session, so only sessions nobody reads or writes are pruned.
func (b *SQLBackend) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	if _, err := b.db.ExecContext(ctx,
		`UPDATE session_values SET updated_at = ? WHERE session_id = ?`,
		b.timestamp(), sessionID,
	); err != nil {
		return "", false, fmt.Errorf("touching session: %w", err)
	}

	var value string
	err := b.db.QueryRowContext(ctx,
		`SELECT value FROM session_values WHERE session_id = ? AND key = ?`,
		sessionID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying session value: %w", err)
	}
	return value, true, nil
}

func (b *SQLBackend) Set(ctx context.Context, sessionID, key, value string) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO session_values (session_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		sessionID, key, value, b.timestamp(),
	)
	if err != nil {
		return fmt.Errorf("upserting session value: %w", err)
	}
	return nil
}

// Prune deletes rows last read or written before the given time.
func (b *SQLBackend) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := b.db.ExecContext(ctx,
		"DELETE FROM session_values WHERE updated_at < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("pruning sessions: %w", err)
	}
	return res.RowsAffected()
}
